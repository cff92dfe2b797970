package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"tasks-pro/taskspro/broker"
	"tasks-pro/taskspro/database"
	"tasks-pro/taskspro/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxTitleLength = 255

type TaskServiceInterface interface {
	CreateTask(db *database.Database, title string, requester models.User) (models.Task, error)
	GetTasks(db *database.Database, requester models.User) ([]models.Task, error)
	GetTaskById(db *database.Database, id uuid.UUID, requester models.User) (models.Task, error)
	UpdateTask(db *database.Database, id uuid.UUID, patch models.TaskPatch, requester models.User) (models.Task, error)
	DeleteTask(db *database.Database, id uuid.UUID, requester models.User) (models.Task, error)
}

type TaskService struct{}

// CreateTask inserts a task owned by the requester. Any authenticated user
// may create tasks; ownership is fixed here and never reassigned.
func (s *TaskService) CreateTask(db *database.Database, title string, requester models.User) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return models.Task{}, ErrValidation
	}

	task := models.Task{
		ID:      uuid.New(),
		Title:   title,
		Done:    false,
		OwnerID: requester.ID,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	broker.PublishEvent(broker.TaskCreated, models.NewEventMessage(
		string(broker.TaskCreated),
		task.OwnerID.String(),
		map[string]interface{}{
			"task_id": task.ID.String(),
			"title":   task.Title,
			"done":    task.Done,
		},
	))

	return task, nil
}

// GetTasks lists tasks visible to the requester, newest first. The scoping
// happens in the store query itself: administrators query every row and get
// the owner summary attached, regular users query only their own rows.
func (s *TaskService) GetTasks(db *database.Database, requester models.User) ([]models.Task, error) {
	var tasks []models.Task

	query := db.DB.Order("created_at DESC")
	if !requester.IsAdmin() {
		query = query.Where("owner_id = ?", requester.ID)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	if requester.IsAdmin() {
		if err := attachOwners(db, tasks); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

// GetTaskById fetches a single task with its owner summary. Existence is
// checked before ownership, so a nonexistent id yields ErrTaskNotFound for
// every caller and never ErrForbidden.
func (s *TaskService) GetTaskById(db *database.Database, id uuid.UUID, requester models.User) (models.Task, error) {
	task, err := fetchTask(db, id)
	if err != nil {
		return models.Task{}, err
	}

	if !ResolveTaskAccess(task, requester).Granted() {
		return models.Task{}, ErrForbidden
	}

	if err := attachOwner(db, &task); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask applies a partial update to a task after the same fetch and
// authorize sequence as GetTaskById. Nil patch fields leave the stored
// values untouched; the response carries no owner summary.
func (s *TaskService) UpdateTask(db *database.Database, id uuid.UUID, patch models.TaskPatch, requester models.User) (models.Task, error) {
	task, err := fetchTask(db, id)
	if err != nil {
		return models.Task{}, err
	}

	if !ResolveTaskAccess(task, requester).Granted() {
		return models.Task{}, ErrForbidden
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
			return models.Task{}, ErrValidation
		}
		fields["title"] = title
	}
	if patch.Done != nil {
		fields["done"] = *patch.Done
	}

	if len(fields) > 0 {
		if err := db.DB.Model(&task).Updates(fields).Error; err != nil {
			return models.Task{}, err
		}
	}

	broker.PublishEvent(broker.TaskUpdated, models.NewEventMessage(
		string(broker.TaskUpdated),
		task.OwnerID.String(),
		map[string]interface{}{
			"task_id": task.ID.String(),
			"title":   task.Title,
			"done":    task.Done,
		},
	))

	return task, nil
}

// DeleteTask permanently removes a task and returns its prior state. The
// fetch and authorize order matches UpdateTask.
func (s *TaskService) DeleteTask(db *database.Database, id uuid.UUID, requester models.User) (models.Task, error) {
	task, err := fetchTask(db, id)
	if err != nil {
		return models.Task{}, err
	}

	if !ResolveTaskAccess(task, requester).Granted() {
		return models.Task{}, ErrForbidden
	}

	if err := db.DB.Delete(&task).Error; err != nil {
		return models.Task{}, err
	}

	broker.PublishEvent(broker.TaskDeleted, models.NewEventMessage(
		string(broker.TaskDeleted),
		task.OwnerID.String(),
		map[string]interface{}{
			"task_id": task.ID.String(),
		},
	))

	return task, nil
}

func fetchTask(db *database.Database, id uuid.UUID) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

// attachOwner loads the minimal owner summary for a single task.
func attachOwner(db *database.Database, task *models.Task) error {
	var owner models.OwnerSummary
	if err := db.DB.Model(&models.User{}).
		Select("id", "email", "role").
		Where("id = ?", task.OwnerID).
		Take(&owner).Error; err != nil {
		return err
	}
	task.Owner = &owner
	return nil
}

// attachOwners loads owner summaries for a task list in a single query.
func attachOwners(db *database.Database, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ownerIDs := make([]uuid.UUID, 0, len(tasks))
	for _, task := range tasks {
		ownerIDs = append(ownerIDs, task.OwnerID)
	}

	var owners []models.OwnerSummary
	if err := db.DB.Model(&models.User{}).
		Select("id", "email", "role").
		Where("id IN ?", ownerIDs).
		Find(&owners).Error; err != nil {
		return err
	}

	byID := make(map[uuid.UUID]models.OwnerSummary, len(owners))
	for _, owner := range owners {
		byID[owner.ID] = owner
	}

	for i := range tasks {
		if owner, ok := byID[tasks[i].OwnerID]; ok {
			summary := owner
			tasks[i].Owner = &summary
		}
	}

	return nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
