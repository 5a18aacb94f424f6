package goVault

import "errors"

var (
	// ErrFullCapacity is returned when every prefix/suffix combination is
	// currently allocated. Recoverable by the caller: retry later or reject
	// the new session. Always paired with a Critical audit event.
	ErrFullCapacity = errors.New("no free join key available")
	// ErrMalformedCode is returned when a release string does not parse into
	// exactly two space-separated words. A caller error; the registry is
	// never consulted.
	ErrMalformedCode = errors.New("malformed join code")
	// ErrWordsUnavailable is returned when the vocabulary store could not be
	// reached during Build. Fatal: no partial vault is permitted, since its
	// capacity would be undefined.
	ErrWordsUnavailable = errors.New("vocabulary store unavailable")
	// ErrWordListEmpty is returned when either vocabulary loads with zero
	// words. Fatal for the same reason as ErrWordsUnavailable.
	ErrWordListEmpty = errors.New("word list empty")
	// ErrVaultClosed is returned when an operation is attempted after Close.
	ErrVaultClosed = errors.New("vault closed")
	// ErrVaultNotReady is returned when a nil or unbuilt vault is used.
	ErrVaultNotReady = errors.New("vault not initialized")
)
