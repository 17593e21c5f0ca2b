package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/form"
	"taskboard/internal/service"
	"taskboard/internal/view"
)

const (
	msgTaskPosted    = "New entry was successfully posted. Thanks."
	msgTaskCompleted = "The task was marked as complete. Nice."
	msgCompleteOwn   = "You can only update tasks that belong to you."
	msgTaskDeleted   = "The task was deleted. Why not add a new one?"
	msgDeleteOwn     = "You can only delete tasks that belong to you."
)

// TaskHandler handles the task board.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List godoc
// @Summary Show all open and closed tasks
// @Description Lists every user's tasks ordered by due date. Requires a logged-in session.
// @Tags tasks
// @Produce html
// @Success 200 {string} string "task list page"
// @Success 302 {string} string "redirect to / when not logged in"
// @Router /tasks/ [get]
func (h *TaskHandler) List(c echo.Context) error {
	return h.renderTasks(c, form.AddTaskForm{}, nil)
}

// NewTaskPage redirects to the task list, which carries the form.
// @Summary Redirect to the task list
// @Tags tasks
// @Success 302 {string} string "redirect to /tasks/"
// @Router /add/ [get]
func (h *TaskHandler) NewTaskPage(c echo.Context) error {
	return c.Redirect(http.StatusFound, TasksPath)
}

// Create godoc
// @Summary Add a task
// @Description The task is created open, owned by the logged-in user.
// @Tags tasks
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Task name"
// @Param due_date formData string true "Due date (YYYY-MM-DD)"
// @Param priority formData string true "low, medium or high"
// @Success 302 {string} string "redirect to /tasks/"
// @Success 200 {string} string "task list page with errors"
// @Failure 400 {string} string "malformed form"
// @Router /add/ [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var f form.AddTaskForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidFormReq)
	}
	f.Normalize()
	if err := c.Validate(&f); err != nil {
		fieldErrs, ok := form.AsErrors(err)
		if !ok {
			return err
		}
		return h.renderTasks(c, f, fieldErrs)
	}

	due, err := f.Due()
	if err != nil {
		return h.renderTasks(c, f, form.Errors{"due_date": err.Error()})
	}

	input := service.NewTask{Name: f.Name, DueDate: due, Priority: f.PriorityValue()}
	if _, err := h.taskService.Create(c.Request().Context(), auth.PrincipalFrom(c), input); err != nil {
		return toHTTPError(err)
	}

	auth.SessionFrom(c).Flash(auth.FlashSuccess, msgTaskPosted)
	return c.Redirect(http.StatusFound, TasksPath)
}

// Complete godoc
// @Summary Mark a task as complete
// @Description Allowed for the task's owner or an admin. Others get a notice and nothing changes.
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 302 {string} string "redirect to /tasks/"
// @Failure 404 {string} string "task not found"
// @Router /complete/{id}/ [get]
func (h *TaskHandler) Complete(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	err = h.taskService.Complete(c.Request().Context(), auth.PrincipalFrom(c), id)
	return h.afterMutation(c, err, msgTaskCompleted, msgCompleteOwn)
}

// Delete godoc
// @Summary Delete a task
// @Description Allowed for the task's owner or an admin. Others get a notice and nothing changes.
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 302 {string} string "redirect to /tasks/"
// @Failure 404 {string} string "task not found"
// @Router /delete/{id}/ [get]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	err = h.taskService.Delete(c.Request().Context(), auth.PrincipalFrom(c), id)
	return h.afterMutation(c, err, msgTaskDeleted, msgDeleteOwn)
}

func (h *TaskHandler) afterMutation(c echo.Context, err error, okMsg, deniedMsg string) error {
	sess := auth.SessionFrom(c)
	switch {
	case err == nil:
		sess.Flash(auth.FlashSuccess, okMsg)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		sess.Flash(auth.FlashError, deniedMsg)
	default:
		return toHTTPError(err)
	}
	return c.Redirect(http.StatusFound, TasksPath)
}

func (h *TaskHandler) renderTasks(c echo.Context, f form.AddTaskForm, fieldErrs form.Errors) error {
	lists, err := h.taskService.List(c.Request().Context())
	if err != nil {
		return err
	}

	page := view.NewPage(c, "Tasks")
	page.Form = f
	if fieldErrs != nil {
		page.Errors = fieldErrs
	}
	page.SetTasks(lists.Open, lists.Closed)
	return c.Render(http.StatusOK, view.TasksPage, page)
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, apperrors.ErrTaskNotFound.Error())
	}
	return uint(id), nil
}

// toHTTPError turns domain errors into echo errors. Unknown errors pass
// through so the error handler logs them.
func toHTTPError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		return err
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message).SetInternal(err)
}
