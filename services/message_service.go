package services

import (
	"errors"

	"members-only/models"
	"members-only/repositories"

	"gorm.io/gorm"
)

type MessageService interface {
	ListMessages() ([]models.Message, error)
	CreateMessage(form models.NewMessageForm, author *models.User) (*models.Message, error)
	GetMessage(id uint) (*models.Message, error)
	DeleteMessage(id uint) error
}

type messageService struct {
	messageRepo repositories.MessageRepository
}

func NewMessageService(messageRepo repositories.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) ListMessages() ([]models.Message, error) {
	return s.messageRepo.GetAll()
}

func (s *messageService) CreateMessage(form models.NewMessageForm, author *models.User) (*models.Message, error) {
	message := &models.Message{
		Title:  form.Title,
		Text:   form.Text,
		UserID: author.ID,
		User:   *author,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *messageService) GetMessage(id uint) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "message not found"}
		}
		return nil, err
	}

	return message, nil
}

func (s *messageService) DeleteMessage(id uint) error {
	return s.messageRepo.Delete(id)
}
