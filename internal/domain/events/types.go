package events

import "rescue-passport/internal/domain/passports"

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// KnownKinds son los tipos aceptados en filtros.
var KnownKinds = []passports.EventKind{
	passports.EventKindIssued,
	passports.EventKindTransferred,
	passports.EventKindNameUpdated,
}

func isKnownKind(k passports.EventKind) bool {
	for _, known := range KnownKinds {
		if k == known {
			return true
		}
	}
	return false
}
