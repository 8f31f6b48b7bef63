// ABOUTME: MCP tool implementations for workouts, exercises, the catalog and messages.
// ABOUTME: Each tool maps onto one or two Repository operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/workouts/internal/models"
	"github.com/harperreed/workouts/internal/storage"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recorded workouts, most recent first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its exercises",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Create a new workout session",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout and its exercises",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercises performed in a workout",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Record an exercise in a workout",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_predefined_exercises",
		Description: "List the exercise catalog",
	}, s.handleListPredefined)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_predefined_exercise",
		Description: "Get a catalog entry by id",
	}, s.handleGetPredefined)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_predefined_exercise",
		Description: "Add an exercise to the catalog",
	}, s.handleAddPredefined)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_messages",
		Description: "List stored messages",
	}, s.handleListMessages)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_message",
		Description: "Store a free-text message",
	}, s.handleAddMessage)
}

// Tool input/output types

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type workoutsOutput struct {
	Workouts []workoutView `json:"workouts"`
	Count    int           `json:"count"`
}

type workoutUUIDInput struct {
	UUID string `json:"uuid" jsonschema:"Workout UUID"`
}

type addWorkoutInput struct {
	Title    string `json:"title" jsonschema:"Workout title"`
	WorkDate string `json:"work_date,omitempty" jsonschema:"When the workout happened (YYYY-MM-DDTHH:MM), defaults to now"`
}

type createdOutput struct {
	ID      int64  `json:"id"`
	UUID    string `json:"uuid"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listExercisesInput struct {
	WorkoutUUID string `json:"workout_uuid" jsonschema:"Workout UUID"`
}

type exercisesOutput struct {
	Exercises []exerciseView `json:"exercises"`
	Count     int            `json:"count"`
}

type addExerciseInput struct {
	WorkoutUUID          string   `json:"workout_uuid" jsonschema:"Workout UUID"`
	PredefinedExerciseID int64    `json:"predefined_exercise_id" jsonschema:"Catalog entry id"`
	Sets                 float64  `json:"sets" jsonschema:"Number of sets (positive)"`
	Reps                 float64  `json:"reps" jsonschema:"Repetitions per set (positive)"`
	Weight               *float64 `json:"weight,omitempty" jsonschema:"Weight used, omit for bodyweight"`
}

type catalogOutput struct {
	Exercises []*models.PredefinedExercise `json:"predefined_exercises"`
	Count     int                          `json:"count"`
}

type predefinedIDInput struct {
	ID int64 `json:"id" jsonschema:"Catalog entry id"`
}

type addPredefinedInput struct {
	Name string `json:"name" jsonschema:"Exercise name"`
}

type messagesOutput struct {
	Messages []*models.Message `json:"messages"`
	Count    int               `json:"count"`
}

type addMessageInput struct {
	Content string `json:"content" jsonschema:"Message text"`
}

// Tool handlers

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, workoutsOutput, error) {
	workouts, err := s.recentWorkouts(input.Limit)
	if err != nil {
		return nil, workoutsOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}

	out := workoutsOutput{Workouts: make([]workoutView, 0, len(workouts))}
	for _, w := range workouts {
		out.Workouts = append(out.Workouts, newWorkoutView(w))
	}
	out.Count = len(out.Workouts)
	return nil, out, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutUUIDInput) (*mcp.CallToolResult, workoutDetailView, error) {
	detail, err := s.repo.GetWorkoutDetail(input.UUID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, workoutDetailView{}, fmt.Errorf("workout not found: %s", input.UUID)
		}
		return nil, workoutDetailView{}, fmt.Errorf("failed to get workout: %w", err)
	}
	return nil, newWorkoutDetailView(detail), nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, createdOutput, error) {
	if input.Title == "" {
		return nil, createdOutput{}, fmt.Errorf("title is required")
	}

	workDate := time.Now()
	if input.WorkDate != "" {
		t, err := models.ParseWorkDate(input.WorkDate)
		if err != nil {
			return nil, createdOutput{}, err
		}
		workDate = t
	}

	w := models.NewWorkoutAt(input.Title, workDate)

	id, err := s.repo.CreateWorkout(w)
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}
	s.logger.Debug("created workout", "uuid", w.UUID, "id", id)

	return nil, createdOutput{
		ID:      id,
		UUID:    w.UUID,
		Message: fmt.Sprintf("Added workout %q on %s (UUID: %s)", w.Title, models.FormatWorkDate(w.WorkDate), w.UUID),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutUUIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.UUID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout: %s", input.UUID)}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, exercisesOutput, error) {
	detail, err := s.repo.GetWorkoutDetail(input.WorkoutUUID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, exercisesOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutUUID)
		}
		return nil, exercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	view := newWorkoutDetailView(detail)
	return nil, exercisesOutput{Exercises: view.Exercises, Count: len(view.Exercises)}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, createdOutput, error) {
	if input.Sets <= 0 || input.Reps <= 0 {
		return nil, createdOutput{}, fmt.Errorf("sets and reps must be positive")
	}

	w, err := s.repo.GetWorkoutByUUID(input.WorkoutUUID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, createdOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutUUID)
		}
		return nil, createdOutput{}, fmt.Errorf("failed to get workout: %w", err)
	}

	e := models.NewExerciseFor(w.ID, input.PredefinedExerciseID, input.Sets, input.Reps)
	if input.Weight != nil {
		e.WithWeight(*input.Weight)
	}

	id, err := s.repo.CreateExercise(e)
	if err != nil {
		if storage.IsConstraintViolation(err) {
			return nil, createdOutput{}, fmt.Errorf("unknown predefined exercise: %d", input.PredefinedExerciseID)
		}
		return nil, createdOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		UUID:    e.UUID,
		Message: fmt.Sprintf("Added %gx%g to workout %s (UUID: %s)", input.Sets, input.Reps, w.UUID, e.UUID),
	}, nil
}

func (s *Server) handleListPredefined(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, catalogOutput, error) {
	catalog, err := s.repo.ListPredefinedExercises()
	if err != nil {
		return nil, catalogOutput{}, fmt.Errorf("failed to list catalog: %w", err)
	}
	return nil, catalogOutput{Exercises: catalog, Count: len(catalog)}, nil
}

func (s *Server) handleGetPredefined(ctx context.Context, req *mcp.CallToolRequest, input predefinedIDInput) (*mcp.CallToolResult, models.PredefinedExercise, error) {
	p, err := s.repo.GetPredefinedExerciseByID(input.ID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, models.PredefinedExercise{}, fmt.Errorf("predefined exercise not found: %d", input.ID)
		}
		return nil, models.PredefinedExercise{}, fmt.Errorf("failed to get predefined exercise: %w", err)
	}
	return nil, *p, nil
}

func (s *Server) handleAddPredefined(ctx context.Context, req *mcp.CallToolRequest, input addPredefinedInput) (*mcp.CallToolResult, createdOutput, error) {
	if input.Name == "" {
		return nil, createdOutput{}, fmt.Errorf("name is required")
	}

	p := models.NewCatalogEntry(input.Name)
	id, err := s.repo.CreatePredefinedExercise(p)
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to add predefined exercise: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		UUID:    p.UUID,
		Message: fmt.Sprintf("Added %s to catalog (ID: %d)", p.Name, id),
	}, nil
}

func (s *Server) handleListMessages(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, messagesOutput, error) {
	messages, err := s.repo.ListMessages()
	if err != nil {
		return nil, messagesOutput{}, fmt.Errorf("failed to list messages: %w", err)
	}
	return nil, messagesOutput{Messages: messages, Count: len(messages)}, nil
}

func (s *Server) handleAddMessage(ctx context.Context, req *mcp.CallToolRequest, input addMessageInput) (*mcp.CallToolResult, createdOutput, error) {
	if input.Content == "" {
		return nil, createdOutput{}, fmt.Errorf("content is required")
	}

	m := models.NewMessageWith(input.Content)
	id, err := s.repo.CreateMessage(m)
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to add message: %w", err)
	}

	return nil, createdOutput{ID: id, UUID: m.UUID, Message: fmt.Sprintf("Stored message (UUID: %s)", m.UUID)}, nil
}
