package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	taskModel "schoolku_backend/internals/features/tasks/model"
)

// LaunchTask meng-enqueue job ke store dan mencatat record tasks.
func LaunchTask(db *gorm.DB, store JobStore, userID uuid.UUID, name, description string, kwargs map[string]any) (*taskModel.TaskModel, error) {
	jobID, err := store.Enqueue(name, kwargs)
	if err != nil {
		return nil, err
	}

	task := &taskModel.TaskModel{
		TaskID:      jobID,
		Name:        name,
		Description: description,
		Kwargs:      kwargs,
		UserID:      userID,
	}
	if err := db.Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// GetTasksInProgress — task milik user yang belum complete
func GetTasksInProgress(db *gorm.DB, userID uuid.UUID) ([]taskModel.TaskModel, error) {
	var tasks []taskModel.TaskModel
	err := db.Where("user_id = ? AND complete = ?", userID, false).Find(&tasks).Error
	return tasks, err
}

// GetTaskInProgress — task berjalan milik user berdasarkan nama
func GetTaskInProgress(db *gorm.DB, userID uuid.UUID, name string) (*taskModel.TaskModel, error) {
	var task taskModel.TaskModel
	err := db.Where("user_id = ? AND name = ? AND complete = ?", userID, name, false).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetCompletedTasks — task milik user yang sudah complete
func GetCompletedTasks(db *gorm.DB, userID uuid.UUID) ([]taskModel.TaskModel, error) {
	var tasks []taskModel.TaskModel
	err := db.Where("user_id = ? AND complete = ?", userID, true).Find(&tasks).Error
	return tasks, err
}

// GetProgress membaca progress job dari store. Job yang tidak
// ditemukan (broker error / sudah hilang) dianggap selesai: 100.
func GetProgress(store JobStore, task *taskModel.TaskModel) int {
	status, err := store.FetchStatus(task.TaskID)
	if err != nil {
		return 100
	}
	return status.Progress
}

// MarkComplete menandai record tasks complete=true berdasarkan job id.
func MarkComplete(db *gorm.DB, jobID string) {
	if err := db.Model(&taskModel.TaskModel{}).
		Where("task_id = ?", jobID).
		Update("complete", true).Error; err != nil {
		log.Println("[ERROR] mark task complete:", err)
	}
}
