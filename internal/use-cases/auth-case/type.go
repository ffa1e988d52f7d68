package auth_case

// SessionTracker ist die in Redis abgelegte Sitzungsinformation.
type SessionTracker struct {
	JTI     string
	UserID  string
	Token   string
	Device  string
	Agent   string
	IP      string
	LoginAt string
}
