package service

import (
	"errors"

	"contacts-api/config"

	"go.uber.org/zap"
)

type MailJob struct {
	To       string
	Username string
	Token    string
}

// MailQueue dispatches verification emails to a small worker pool so
// that registration requests never wait on SMTP. Delivery failures are
// logged and never surfaced to the request that triggered them.
type MailQueue struct {
	jobs    chan *MailJob
	workers int
	mailer  *Mailer
}

func NewMailQueue(cfg *config.Config) *MailQueue {
	zap.L().Debug("Initializing mail queue",
		zap.Int("workers", cfg.Mail.Workers),
		zap.Int("queue_size", cfg.Mail.QueueSize))

	return &MailQueue{
		jobs:    make(chan *MailJob, cfg.Mail.QueueSize),
		workers: cfg.Mail.Workers,
		mailer:  NewMailer(cfg),
	}
}

func (q *MailQueue) StartWorkerPool() {
	for i := 0; i < q.workers; i++ {
		go q.worker()
	}
}

// Enqueue hands a job to the pool without blocking. When the queue is
// full the job is dropped, the user can always request another email.
func (q *MailQueue) Enqueue(j *MailJob) error {
	select {
	case q.jobs <- j:
		return nil
	default:
		return errors.New("mail queue is full")
	}
}

func (q *MailQueue) worker() {
	for job := range q.jobs {
		err := q.mailer.SendVerificationMail(job.To, job.Username, job.Token)
		if err != nil {
			zap.L().Error("Failed to send verification email",
				zap.String("to", job.To),
				zap.Error(err))
			continue
		}

		zap.L().Debug("Verification email sent", zap.String("to", job.To))
	}
}
