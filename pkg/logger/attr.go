package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the plan owner's identifier under the key "user_id".
// If id is empty, it returns an empty Attr.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// PlanID records a plan record identifier under the key "plan_id".
// If id is empty, it returns an empty Attr.
func PlanID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("plan_id", id)
}

// Tipo records a plan tier label under the key "tipo".
// If tipo is empty, it returns an empty Attr.
func Tipo(tipo string) slog.Attr {
	if tipo == "" {
		return slog.Attr{}
	}
	return slog.String("tipo", tipo)
}
