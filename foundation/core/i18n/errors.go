// File: errors.go
// Title: Localized Error Messages
// Description: Renders structured errors through the catalog using their
//              message key and details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package i18n

import (
	mdwerror "github.com/msto63/summa/foundation/core/error"
)

// Localize returns the localized message for err. Errors without a
// catalog entry fall back to err.Error().
func (m *Manager) Localize(err error) string {
	if err == nil {
		return ""
	}

	mdwErr, ok := mdwerror.As(err)
	if !ok || mdwErr.MessageKey() == "" {
		return err.Error()
	}

	msg, tErr := m.TryT(mdwErr.MessageKey(), mdwErr.MessageArgs())
	if tErr != nil {
		return err.Error()
	}
	return msg
}
