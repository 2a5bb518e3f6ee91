package model

import (
	"errors"
	"fmt"
)

// NoResponseText stands in for a reply when a backend returns no text.
const NoResponseText = "No response from API."

// MissingCredentialError is returned when a cloud backend has no API key.
type MissingCredentialError struct {
	Provider string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s API Key is missing.", e.Provider)
}

// Configuration fields checked before contacting the local server.
const (
	FieldServerURL = "url"
	FieldModel     = "model"
)

// MissingConfigurationError is returned when the local server URL or model is unset.
type MissingConfigurationError struct {
	Field string
}

func (e *MissingConfigurationError) Error() string {
	switch e.Field {
	case FieldModel:
		return "No Ollama model selected."
	default:
		return "Ollama server URL is missing."
	}
}

// ConnectionFailedError is returned when the local server cannot be reached.
type ConnectionFailedError struct {
	URL string
	Err error
}

func (e *ConnectionFailedError) Error() string {
	return fmt.Sprintf("Could not connect to the Ollama server at %s. Check the address and make sure your firewall allows the connection.", e.URL)
}

func (e *ConnectionFailedError) Unwrap() error {
	return e.Err
}

// ProviderError covers every other transport, status or decoding failure.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// AsFailure converts err into one of the failure types above. Errors that
// already belong to the taxonomy are returned unchanged.
func AsFailure(err error) error {
	if err == nil {
		return nil
	}

	var (
		credErr *MissingCredentialError
		cfgErr  *MissingConfigurationError
		connErr *ConnectionFailedError
		provErr *ProviderError
	)
	switch {
	case errors.As(err, &credErr):
		return credErr
	case errors.As(err, &cfgErr):
		return cfgErr
	case errors.As(err, &connErr):
		return connErr
	case errors.As(err, &provErr):
		return provErr
	default:
		return &ProviderError{Message: err.Error()}
	}
}

// UserMessage returns the text shown in place of the reply and in the
// notification when a request fails.
func UserMessage(err error) string {
	return "Error: " + AsFailure(err).Error()
}
