package icq

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the relayer's cross-chain query errors.
const ModuleName = "icq"

var (
	// ErrAttributeMissing is returned when a required event attribute is absent.
	ErrAttributeMissing = errorsmod.Register(ModuleName, 2, "attribute missing")
	// ErrMalformedIdentifier is returned for a chain or connection identifier that fails validation.
	ErrMalformedIdentifier = errorsmod.Register(ModuleName, 3, "malformed identifier")
	// ErrMalformedQueryType is returned for an empty or otherwise invalid query type.
	ErrMalformedQueryType = errorsmod.Register(ModuleName, 4, "malformed query type")
	// ErrMalformedHeight is returned when a height is not a decimal unsigned integer.
	ErrMalformedHeight = errorsmod.Register(ModuleName, 5, "malformed height")
	// ErrParse is returned when a multi-valued block event map can't be decoded.
	ErrParse = errorsmod.Register(ModuleName, 6, "failed to parse event map")
	// ErrDispatch marks a query dispatch failure on the queried chain.
	ErrDispatch = errorsmod.Register(ModuleName, 7, "query dispatch failure")
	// ErrMixedHeights is returned when a dispatched batch contains requests at different heights.
	ErrMixedHeights = errorsmod.Register(ModuleName, 8, "batch contains requests at different heights")
	// ErrConnectionLookup marks a failed connection end lookup on the querying chain.
	ErrConnectionLookup = errorsmod.Register(ModuleName, 9, "connection lookup failure")
	// ErrClientResolution marks a failure to locate the light client tracking the queried chain.
	ErrClientResolution = errorsmod.Register(ModuleName, 10, "client resolution failure")
	// ErrUpdateClientBuild marks a failure to build update client messages.
	ErrUpdateClientBuild = errorsmod.Register(ModuleName, 11, "update client build failure")
	// ErrSubmission marks a result transaction that wasn't accepted by the querying chain.
	ErrSubmission = errorsmod.Register(ModuleName, 12, "submission failure")
	// ErrSigner marks a missing or unreadable relayer signing key.
	ErrSigner = errorsmod.Register(ModuleName, 13, "signer unavailable")
)
