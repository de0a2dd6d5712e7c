package ws

// Inbound control message. Type is "translate" or "detect".
type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Outbound events. For one generation the client sees exactly one
// translation_start, zero or more translation_chunk, and one terminal
// translation_end or error, in that order.

type startEvent struct {
	Type     string `json:"type"`
	Original string `json:"original"`
}

type chunkEvent struct {
	Type  string `json:"type"`
	Chunk string `json:"chunk"`
}

type endEvent struct {
	Type            string `json:"type"`
	FullTranslation string `json:"full_translation"`
}

type detectionEvent struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	IsFrench   bool    `json:"is_french"`
	Confidence float64 `json:"confidence"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func errEvent(msg string) errorEvent {
	return errorEvent{Type: "error", Message: msg}
}
