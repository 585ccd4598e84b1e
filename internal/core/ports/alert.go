package ports

// AlertPort shows a blocking, user-visible message.
type AlertPort interface {
	Alert(msg string)
}
