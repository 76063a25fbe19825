package utils

import "fmt"

// DynBuffer is an append-only buffer that keeps its storage across Reset
type DynBuffer[T any] struct {
	cells []T
}

func NewDynBuffer[T any](capacity int) *DynBuffer[T] {
	return &DynBuffer[T]{cells: make([]T, 0, capacity)}
}

func (db *DynBuffer[T]) Add(val T)     { db.cells = append(db.cells, val) }
func (db *DynBuffer[T]) Cells() []T    { return db.cells }
func (db *DynBuffer[T]) Len() int      { return len(db.cells) }
func (db *DynBuffer[T]) Reset()        { db.cells = db.cells[:0] }
func (db *DynBuffer[T]) IsEmpty() bool { return len(db.cells) == 0 }

// MailBox routes messages between the NP goroutines of a partitioned loop.
// One exchange is:
//
//	PostMessage for every message; DeliverMyMessages; barrier;
//	ReceiveMyMessages; ClearMyMessages
//
// A goroutine only touches its own outbox and inbox.
type MailBox[T any] struct {
	NP       int
	inbox    []chan *DynBuffer[T]
	outbox   [][]*DynBuffer[T] // [sender][target], allocated on first use
	received []*DynBuffer[T]
}

func NewMailBox[T any](NP int) *MailBox[T] {
	mb := &MailBox[T]{
		NP:       NP,
		inbox:    make([]chan *DynBuffer[T], NP),
		outbox:   make([][]*DynBuffer[T], NP),
		received: make([]*DynBuffer[T], NP),
	}
	for n := 0; n < NP; n++ {
		// Every sender delivers at most one buffer per exchange
		mb.inbox[n] = make(chan *DynBuffer[T], NP)
		mb.outbox[n] = make([]*DynBuffer[T], NP)
		mb.received[n] = NewDynBuffer[T](0)
	}
	return mb
}

func (mb *MailBox[T]) PostMessage(myThread, targetThread int, msg T) {
	if targetThread < 0 || targetThread >= mb.NP {
		panic(fmt.Errorf("target thread %d out of bounds [0,%d)", targetThread, mb.NP))
	}
	out := mb.outbox[myThread][targetThread]
	if out == nil {
		out = NewDynBuffer[T](0)
		mb.outbox[myThread][targetThread] = out
	}
	out.Add(msg)
}

func (mb *MailBox[T]) DeliverMyMessages(myThread int) {
	for targetThread, out := range mb.outbox[myThread] {
		if out != nil && !out.IsEmpty() {
			mb.inbox[targetThread] <- out
		}
	}
}

// ReceiveMyMessages collects everything delivered to myThread, the returned
// slice is valid until ClearMyMessages
func (mb *MailBox[T]) ReceiveMyMessages(myThread int) []T {
	for {
		select {
		case out := <-mb.inbox[myThread]:
			for _, msg := range out.Cells() {
				mb.received[myThread].Add(msg)
			}
			// The sender's outbox is reused in the next exchange
			out.Reset()
		default:
			return mb.received[myThread].Cells()
		}
	}
}

func (mb *MailBox[T]) ClearMyMessages(myThread int) {
	mb.received[myThread].Reset()
}

// PartitionMap splits the indices [0, MaxIndex) into ParallelDegree
// contiguous buckets whose sizes differ by at most one, the larger buckets
// first
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of each bucket
	size, rem      int
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		panic(fmt.Errorf("parallel degree must be positive, have %d", ParallelDegree))
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
		size:           maxIndex / ParallelDegree,
		rem:            maxIndex % ParallelDegree,
	}
	for n := range pm.Partitions {
		start := n*pm.size + min(n, pm.rem)
		pm.Partitions[n] = [2]int{start, start + pm.BucketSize(n)}
	}
	return
}

func (pm *PartitionMap) BucketSize(bucketNum int) int {
	if bucketNum < pm.rem {
		return pm.size + 1
	}
	return pm.size
}

// GetBucket returns the bucket holding index k and that bucket's range
func (pm *PartitionMap) GetBucket(k int) (bucketNum, kMin, kMax int) {
	if k < 0 || k >= pm.MaxIndex {
		panic(fmt.Errorf("index %d out of bounds [0,%d)", k, pm.MaxIndex))
	}
	if split := pm.rem * (pm.size + 1); k < split {
		bucketNum = k / (pm.size + 1)
	} else {
		bucketNum = pm.rem + (k-split)/pm.size
	}
	kMin, kMax = pm.GetBucketRange(bucketNum)
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}
