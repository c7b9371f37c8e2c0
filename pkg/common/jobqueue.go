package common

import "sync"

type Job func() error

// JobQueue runs jobs one by one on a single background goroutine. Front ends use it to keep their input loops
// responsive while making sure a model never sees two requests at once.
type JobQueue struct {
	jobsChannel chan Job
	stopChannel chan struct{}
	stopOnce    sync.Once
	waitGroup   sync.WaitGroup
	logger      Logger
}

func NewJobQueue(logger Logger) *JobQueue {
	worker := &JobQueue{
		jobsChannel: make(chan Job, 128),
		stopChannel: make(chan struct{}),
		logger:      logger,
	}
	worker.waitGroup.Add(1)
	go worker.run()
	return worker
}

func (j *JobQueue) Enqueue(job Job) {
	j.jobsChannel <- job
}

// Stop waits for the job in progress (if any) to finish. Jobs which were enqueued but not started yet are dropped.
func (j *JobQueue) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChannel)
	})
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for {
		select {
		case <-j.stopChannel:
			return
		case job := <-j.jobsChannel:
			err := job()
			if err != nil {
				j.logger.Log("failed to process a job: " + err.Error())
			}
		}
	}
}
