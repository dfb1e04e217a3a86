package console

import "sync"

// Message is a report captured by Scripted.
type Message struct {
	Text     string
	Severity Severity
}

// Scripted is a Console that answers prompts from a queue and records
// every prompt and report. Lua tools and tests use it.
type Scripted struct {
	mu       sync.Mutex
	answers  []string
	prompts  []string
	messages []Message
}

// NewScripted creates a console that answers prompts in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: append([]string(nil), answers...)}
}

// Push queues more answers.
func (s *Scripted) Push(answers ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, answers...)
}

// Prompt returns the next queued answer, or ok=false when the queue is empty.
func (s *Scripted) Prompt(message string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, message)
	if len(s.answers) == 0 {
		return "", false
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, true
}

// Report records the message.
func (s *Scripted) Report(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Text: message, Severity: severity})
}

// Prompts returns every prompt message seen so far.
func (s *Scripted) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Messages returns every report seen so far.
func (s *Scripted) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Last returns the most recent report.
func (s *Scripted) Last() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
