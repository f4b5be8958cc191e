package models

type Room struct {
	ID          int    `json:"id"`
	Number      string `json:"number"`
	Description string `json:"description"`
}
