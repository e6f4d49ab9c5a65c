package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTasks returns delivery tasks, optionally filtered by status
func GetTasks(c *gin.Context) {
	tasks := engine.Tasks(c.Query("status"))
	c.JSON(http.StatusOK, gin.H{"count": len(tasks), "tasks": tasks})
}

// GetTask returns a single delivery task
func GetTask(c *gin.Context) {
	task, err := engine.TaskByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// PickupTask marks a task picked up; its correlated order goes out for
// delivery
func PickupTask(c *gin.Context) {
	task, err := engine.PickupTask(c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order picked up",
		"task_id":  task.ID,
		"order_id": task.OrderID,
		"status":   task.Status,
	})
}

// CompleteTask marks a task delivered; its correlated order is delivered
func CompleteTask(c *gin.Context) {
	task, err := engine.CompleteTask(c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered! 🎉",
		"task_id":  task.ID,
		"order_id": task.OrderID,
		"status":   task.Status,
	})
}
