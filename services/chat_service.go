package services

import (
	"fmt"
	"path/filepath"

	"chatsim/domain"
	"chatsim/runtime"
	"chatsim/session"

	"github.com/gabriel-vasile/mimetype"
)

// IChatService is the surface the presentation layer talks to. Everything
// behind it is in-memory and ephemeral.
type IChatService interface {
	Login(email, password string) (domain.User, error)
	Logout()
	SelectContact(id domain.ContactID) error
	SetDraftText(text string)
	SelectFile(path string) (domain.Attachment, error)
	StageAttachment(name, mimeType string) domain.Attachment
	ClearAttachment()
	Send() error
	FilterContacts(query string) []domain.Contact
	Roster() []domain.Contact
	Messages() []domain.Message
	Phase() session.Phase
	User() (domain.User, bool)
	SelectedContact() (domain.Contact, bool)
}

type ChatService struct {
	engine *runtime.Engine
}

func NewChatService(engine *runtime.Engine) *ChatService {
	return &ChatService{engine: engine}
}

func (s *ChatService) Login(email, password string) (domain.User, error) {
	return s.engine.Login(email, password)
}

func (s *ChatService) Logout() {
	s.engine.Logout()
}

func (s *ChatService) SelectContact(id domain.ContactID) error {
	return s.engine.SelectContact(id)
}

func (s *ChatService) SetDraftText(text string) {
	s.engine.SetDraftText(text)
}

// SelectFile stages a file picked from the host filesystem. Only the name
// and the sniffed MIME type cross into the domain; image files additionally
// get a transient preview reference.
func (s *ChatService) SelectFile(path string) (domain.Attachment, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("detecting mime type: %w", err)
	}
	att := domain.NewAttachment(filepath.Base(path), mtype.String())
	s.engine.StageAttachment(att)
	return att, nil
}

// StageAttachment covers the host file-picker surface where only metadata
// is handed over, without readable file content.
func (s *ChatService) StageAttachment(name, mimeType string) domain.Attachment {
	att := domain.NewAttachment(name, mimeType)
	s.engine.StageAttachment(att)
	return att
}

func (s *ChatService) ClearAttachment() {
	s.engine.ClearAttachment()
}

func (s *ChatService) Send() error {
	return s.engine.Send()
}

func (s *ChatService) FilterContacts(query string) []domain.Contact {
	return s.engine.FilterContacts(query)
}

func (s *ChatService) Roster() []domain.Contact {
	return s.engine.Roster()
}

func (s *ChatService) Messages() []domain.Message {
	return s.engine.Messages()
}

func (s *ChatService) Phase() session.Phase {
	return s.engine.Phase()
}

func (s *ChatService) User() (domain.User, bool) {
	return s.engine.User()
}

func (s *ChatService) SelectedContact() (domain.Contact, bool) {
	return s.engine.SelectedContact()
}
