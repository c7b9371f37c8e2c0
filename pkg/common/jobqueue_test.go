package common

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mutex    sync.Mutex
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.messages = append(r.messages, message)
}

func TestJobQueueRunsJobsInOrder(t *testing.T) {
	logger := &recordingLogger{}
	queue := NewJobQueue(logger)
	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		queue.Enqueue(func() error {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
			return nil
		})
	}
	<-done
	queue.Stop()
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestJobQueueLogsFailures(t *testing.T) {
	logger := &recordingLogger{}
	queue := NewJobQueue(logger)
	done := make(chan struct{})
	queue.Enqueue(func() error {
		return errors.New("boom")
	})
	queue.Enqueue(func() error {
		close(done)
		return nil
	})
	<-done
	queue.Stop()
	queue.Stop()
	require.Equal(t, []string{"failed to process a job: boom"}, logger.messages)
}
