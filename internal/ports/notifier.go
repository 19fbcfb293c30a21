package ports

// Notifier is the transient, toast-style reporting channel. The coordinator
// and session manager write to it; presentation is an adapter concern.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator receives forced-navigation side effects, currently only the
// redirect to the login surface after a session teardown.
type Navigator interface {
	ShowLogin()
}
