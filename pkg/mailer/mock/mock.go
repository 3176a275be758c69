package mock

import "sync"

// Mailer records sent messages for tests.
type Mailer struct {
	mu   sync.Mutex
	Sent []Message
	Err  error
}

type Message struct {
	To      string
	Subject string
	Body    string
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, Message{To: to, Subject: subject, Body: htmlBody})
	return nil
}
