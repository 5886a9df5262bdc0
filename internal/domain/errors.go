package domain

import "errors"

// Domain errors.
var (
	ErrMalformedSource = errors.New("fichier source mal formé")
	ErrMissingBaseData = errors.New("données de base supplémentaires introuvables")
	ErrInvalidConfig   = errors.New("configuration invalide")
)
