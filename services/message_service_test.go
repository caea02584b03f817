package services

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"members-only/models"
)

type fakeMessageRepo struct {
	nextID   uint
	messages map[uint]models.Message
	now      time.Time
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[uint]models.Message{}, now: time.Now()}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	r.nextID++
	r.now = r.now.Add(time.Second)
	message.ID = r.nextID
	message.CreatedAt = r.now
	message.UpdatedAt = r.now
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeMessageRepo) GetByID(id uint) (*models.Message, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &message, nil
}

func (r *fakeMessageRepo) GetAll() ([]models.Message, error) {
	all := make([]models.Message, 0, len(r.messages))
	for _, message := range r.messages {
		all = append(all, message)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *fakeMessageRepo) Delete(id uint) error {
	delete(r.messages, id)
	return nil
}

func TestCreateMessageSetsAuthor(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)

	author := &models.User{ID: 7, FirstName: "A", LastName: "B"}
	message, err := svc.CreateMessage(models.NewMessageForm{Title: "hi", Text: "there"}, author)
	require.NoError(t, err)

	assert.Equal(t, uint(7), message.UserID)
	assert.Equal(t, "hi", message.Title)
	assert.NotZero(t, message.ID)
}

func TestListMessagesNewestFirst(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)

	author := &models.User{ID: 1}
	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreateMessage(models.NewMessageForm{Title: title, Text: "t"}, author)
		require.NoError(t, err)
	}

	messages, err := svc.ListMessages()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].Title)
	assert.Equal(t, "second", messages[1].Title)
	assert.Equal(t, "first", messages[2].Title)
}

func TestGetMessageNotFound(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)

	_, err := svc.GetMessage(42)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestDeleteMessage(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo)

	message, err := svc.CreateMessage(models.NewMessageForm{Title: "bye", Text: "t"}, &models.User{ID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMessage(message.ID))

	_, err = svc.GetMessage(message.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
