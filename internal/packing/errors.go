package packing

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrBoxNotFound  = errors.New("box not found")
	ErrItemNotFound = errors.New("box item not found")
)
