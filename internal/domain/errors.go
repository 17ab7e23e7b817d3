package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrAuctionNotFound     = errors.New("auction settings not found")
	ErrSessionNotFound     = errors.New("wizard session not found")
)

var (
	ErrEmailTaken = errors.New("participant email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
