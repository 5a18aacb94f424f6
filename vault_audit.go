package goVault

import (
	"context"

	"github.com/google/uuid"
)

const (
	auditEventVaultExhausted = "vault_exhausted"
	auditEventKeysReclaimed  = "keys_reclaimed"
)

func (v *Vault) emitAudit(
	ctx context.Context,
	eventType string,
	severity Severity,
	function string,
	description string,
	metadata map[string]string,
) {
	if v == nil || v.audit == nil {
		return
	}

	if requestID := requestIDFromContext(ctx); requestID != "" {
		if metadata == nil {
			metadata = make(map[string]string, 2)
		}
		metadata["request_id"] = requestID
	}
	if gameID := gameIDFromContext(ctx); gameID != "" {
		if metadata == nil {
			metadata = make(map[string]string, 1)
		}
		metadata["game_id"] = gameID
	}

	v.audit.Emit(ctx, AuditEvent{
		EventID:     uuid.NewString(),
		Timestamp:   v.now().UTC(),
		EventType:   eventType,
		Severity:    severity,
		Function:    function,
		Description: description,
		Metadata:    metadata,
	})
}
