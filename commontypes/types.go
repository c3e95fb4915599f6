package commontypes

// QueryResponse is the wire shape returned by the HTTP receiver: one
// rendered conversion block per detected currency mention.
type QueryResponse struct {
	Results []string `json:"results"`
}
