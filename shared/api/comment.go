package api

import "github.com/itchan-dev/forum/shared/domain"

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}
