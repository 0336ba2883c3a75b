package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"roombook/config"
	bookingRepo "roombook/database/repository/booking"
	roomRepo "roombook/database/repository/room"
	userRepo "roombook/database/repository/user"
	"roombook/models"
	"roombook/utils"
)

const (
	TypeBookingReminder = "booking:reminder"
	TypeCompletionSweep = "booking:sweep"

	// How long before the meeting starts the reminder fires.
	reminderLead = 15 * time.Minute
	// How often ended bookings are swept into the completed state.
	sweepInterval = 5 * time.Minute
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

type reminderPayload struct {
	BookingID string `json:"booking_id"`
}

// TaskClient enqueues background tasks. It satisfies the booking service's
// ReminderScheduler.
type TaskClient struct {
	client *asynq.Client
}

// NewTaskClient connects a task producer to the queue.
func NewTaskClient() *TaskClient {
	return &TaskClient{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder task timed ahead of the booking start.
// Bookings starting sooner than the lead window get no reminder.
func (t *TaskClient) ScheduleReminder(b models.Booking) error {
	fireAt := time.Unix(b.StartTime, 0).Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(reminderPayload{BookingID: b.ID})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := t.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (t *TaskClient) Close() error {
	return t.client.Close()
}

// Worker consumes background tasks: booking reminders and the completion
// sweep that retires ended bookings.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler

	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Users    userRepo.UserRepository
}

// NewWorker builds the task consumer around the repositories.
func NewWorker(bookings bookingRepo.BookingRepository, rooms roomRepo.RoomRepository, users userRepo.UserRepository) *Worker {
	return &Worker{
		server: asynq.NewServer(redisOpts(), asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		}),
		scheduler: asynq.NewScheduler(redisOpts(), nil),
		Bookings:  bookings,
		Rooms:     rooms,
		Users:     users,
	}
}

// Start runs the worker and the periodic sweep in the background.
func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, w.handleReminder)
	mux.HandleFunc(TypeCompletionSweep, w.handleSweep)

	entry := fmt.Sprintf("@every %s", sweepInterval)
	if _, err := w.scheduler.Register(entry, asynq.NewTask(TypeCompletionSweep, nil)); err != nil {
		return fmt.Errorf("failed to register completion sweep: %w", err)
	}

	go func() {
		if err := w.scheduler.Run(); err != nil {
			utils.GetLogger().Error("task scheduler stopped", zap.Error(err))
		}
	}()
	go func() {
		utils.GetLogger().Info("task worker starting")
		if err := w.server.Run(mux); err != nil {
			utils.GetLogger().Error("task worker stopped", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown stops the worker and scheduler.
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

// handleReminder fires the start-of-meeting reminder. Cancelled bookings are
// dropped silently.
func (w *Worker) handleReminder(ctx context.Context, task *asynq.Task) error {
	var p reminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	b, err := w.Bookings.GetByID(p.BookingID)
	if err != nil {
		// The booking may have been removed with its room; nothing to remind.
		utils.GetLogger().Debug("reminder target gone", zap.String("bookingID", p.BookingID))
		return nil
	}
	if b.Status != models.BookingConfirmed {
		return nil
	}

	roomName := b.RoomID
	if r, err := w.Rooms.GetByID(b.RoomID); err == nil {
		roomName = r.Name
	}
	userName := b.UserID
	if u, err := w.Users.GetByID(b.UserID); err == nil {
		userName = u.Name
	}

	// Delivery channel (email, push) plugs in here; the event itself is the
	// contract.
	utils.GetLogger().Info("booking reminder",
		zap.String("bookingID", b.ID),
		zap.String("room", roomName),
		zap.String("user", userName),
		zap.Time("startsAt", time.Unix(b.StartTime, 0)))
	return nil
}

// handleSweep retires confirmed bookings whose end time has passed.
func (w *Worker) handleSweep(ctx context.Context, task *asynq.Task) error {
	n, err := w.Bookings.MarkCompleted(time.Now().Unix())
	if err != nil {
		utils.GetLogger().Error("completion sweep failed", zap.Error(err))
		return err
	}
	if n > 0 {
		utils.GetLogger().Info("completion sweep", zap.Int64("completed", n))
	}
	return nil
}
