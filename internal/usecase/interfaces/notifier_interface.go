package interfaces

import "context"

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go

// INotifier is the best-effort messaging side-channel.
//
// Notify never reports an outcome: transport failures and invalid numbers are
// logged inside the implementation and swallowed. Callers must invoke it
// detached from the response path.
type INotifier interface {
	Notify(ctx context.Context, phone, message string)
}
