//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ChannelSpec describes the channel to provision for a fresh slot. The
// provider must configure it so the owner can post, everyone else can only
// read (no broadcast mentions), and the service identity keeps management
// rights.
type ChannelSpec struct {
	Name    string
	GuildID string
	OwnerID string
}

// ChannelProvider is the chat platform boundary. Calls may block or fail
// independently of core logic; callers must never hold a store transaction
// across them.
type ChannelProvider interface {
	// CreateSlotChannel provisions the channel and returns an opaque ref.
	CreateSlotChannel(ctx context.Context, spec ChannelSpec) (string, error)

	// RevokeAccess removes the owner's write access and hides the channel
	// from the default role, ahead of deletion.
	RevokeAccess(ctx context.Context, channelRef, ownerID string) error

	// DeleteChannel removes the channel. Deleting a channel that is already
	// gone is a success, not an error.
	DeleteChannel(ctx context.Context, channelRef string) error
}

// Messenger delivers direct messages. Delivery is best-effort: a failure is
// reported to the caller as a degraded success, never as an overall failure.
type Messenger interface {
	SendDirect(ctx context.Context, userID, message string) error
}
