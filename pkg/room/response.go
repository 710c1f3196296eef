package room

import (
	"ohheck-server/pkg/playable"
)

type clientState struct {
	Connected []int64 `json:"connected"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return playable.Error(ctx, err)
}
