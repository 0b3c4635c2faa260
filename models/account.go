package models

// Quota is the remote storage usage in bytes.
type Quota struct {
	Used  uint64
	Total uint64
}

// Fraction returns used/total in [0,1], or 0 when the total is unknown.
func (q Quota) Fraction() float64 {
	if q.Total == 0 {
		return 0
	}
	f := float64(q.Used) / float64(q.Total)
	if f > 1 {
		return 1
	}
	return f
}

// AccountInfo holds account metadata returned by GetAccountInfo. Extra keeps
// any field the client does not model explicitly.
type AccountInfo struct {
	Email       string
	DisplayName string
	Provider    string
	Extra       map[string]string
}

// AuthSession is the result of StartAuth: the URL to open in a browser and
// the opaque state echoed back on completion.
type AuthSession struct {
	URL   string
	State string
}
