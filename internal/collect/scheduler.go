package collect

// Scheduler distributes files across workers
type Scheduler interface {
	// Schedule returns, for each worker, the indexes of the files it handles
	Schedule(files []string, workerCount int) [][]int
}

// RoundRobinScheduler distributes files evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes files evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(files []string, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(files) && len(files) > 0 {
		workerCount = len(files)
	}

	distribution := make([][]int, workerCount)
	for i := range files {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}

	return distribution
}
