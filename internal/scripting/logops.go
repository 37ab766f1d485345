package scripting

// LogError implements log_error(msg): records msg as the last error
// logged, surfaced by the frontend's status line.
func (h *Host) LogError(msg string) { h.lastLog = msg }

// LogDebug implements log_debug(msg).
func (h *Host) LogDebug(msg string) { h.lastLog = msg }

// ClearLastLog implements clear_last_log().
func (h *Host) ClearLastLog() { h.lastLog = "" }

// LastLog returns the most recently logged message, read by a
// frontend's status line.
func (h *Host) LastLog() string { return h.lastLog }
