package world

func (w *World) audit(tick uint64, actor string, action string, pos Vec3i, details map[string]any) {
	if w.auditLogger == nil {
		return
	}
	_ = w.auditLogger.WriteAudit(AuditEntry{
		Tick:    tick,
		Actor:   actor,
		Action:  action,
		Pos:     pos.ToArray(),
		Details: details,
	})
}

// auditRejected records a refused mutation with the refusal reason.
func (w *World) auditRejected(tick uint64, actor string, action string, pos Vec3i, reason string) {
	if w.auditLogger == nil {
		return
	}
	_ = w.auditLogger.WriteAudit(AuditEntry{
		Tick:   tick,
		Actor:  actor,
		Action: action,
		Pos:    pos.ToArray(),
		Reason: reason,
	})
}
