package request

type ExtractJobRequest struct {
	Text string `json:"text" binding:"required"`
}
