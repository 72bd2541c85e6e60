package domain

import "strings"

const (
	MsgMissingReviewFields = "Please fill in all fields!"
	MsgRatingOutOfRange    = "Rating must be between 1 and 5!"
)

type ReviewInput struct {
	CustomerName string `json:"customer_name"`
	Outlet       string `json:"outlet"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

func (in *ReviewInput) Validate() error {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Outlet = strings.TrimSpace(in.Outlet)
	in.Comment = strings.TrimSpace(in.Comment)

	switch {
	case in.CustomerName == "":
		return Invalid("customer_name", MsgMissingReviewFields)
	case in.Outlet == "":
		return Invalid("outlet", MsgMissingReviewFields)
	case in.Comment == "":
		return Invalid("comment", MsgMissingReviewFields)
	case in.Rating < 1 || in.Rating > 5:
		return Invalid("rating", MsgRatingOutOfRange)
	}
	return nil
}
