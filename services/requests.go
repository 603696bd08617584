package services

import (
	"slot-lab/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GenerateRequest is the input of a key generation batch.
type GenerateRequest struct {
	Kind     domain.KeyKind `validate:"required"`
	Count    int            `validate:"required,min=1"`
	Duration int            // days, required for timed licenses only
	Issuer   string         `validate:"required"`
}

// SendKeyRequest generates one timed license and delivers it by DM.
type SendKeyRequest struct {
	TargetUser string `validate:"required"`
	Duration   int    `validate:"required,min=1"`
	Issuer     string `validate:"required"`
}

// RedeemRequest carries the redeeming user's identity alongside the code.
// Username and GuildID are only used when the key opens a slot (they shape
// the provisioned channel).
type RedeemRequest struct {
	Code     string `validate:"required"`
	UserID   string `validate:"required"`
	Username string
	GuildID  string
}
