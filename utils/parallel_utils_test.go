package utils

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		pm := NewPartitionMap(Np, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			assert.Equal(t, pm.BucketSize(np), kMax-kMin)
			histo[kMax-kMin]++
		}
		return
	}
	assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	// Buckets tile the index range and every index finds its own
	for _, np := range []int{1, 3, 5, 32} {
		for maxIndex := np; maxIndex < 300; maxIndex++ {
			pm := NewPartitionMap(np, maxIndex)
			next := 0
			for n := 0; n < np; n++ {
				kMin, kMax := pm.GetBucketRange(n)
				assert.Equal(t, next, kMin)
				next = kMax
			}
			assert.Equal(t, maxIndex, next)
			for k := 0; k < maxIndex; k++ {
				bn, kMin, kMax := pm.GetBucket(k)
				assert.True(t, k >= kMin && k < kMax)
				mMin, mMax := pm.GetBucketRange(bn)
				assert.Equal(t, [2]int{mMin, mMax}, [2]int{kMin, kMax})
			}
		}
	}
	assert.Panics(t, func() { NewPartitionMap(0, 10) })
	assert.Panics(t, func() { NewPartitionMap(2, 10).GetBucket(10) })
}

func TestMailBox(t *testing.T) {
	var (
		NP = 4
		mb = NewMailBox[int](NP)
		wg sync.WaitGroup
	)
	assert.Panics(t, func() { mb.PostMessage(0, NP, 1) })
	// Two rounds to make sure buffers are reusable after delivery
	for round := 0; round < 2; round++ {
		wg.Add(NP)
		for n := 0; n < NP; n++ {
			go func(myThread int) {
				defer wg.Done()
				// Each thread sends its id to both ring neighbors
				mb.PostMessage(myThread, (myThread+1)%NP, 10*round+myThread)
				mb.PostMessage(myThread, (myThread+NP-1)%NP, 10*round+myThread)
				mb.DeliverMyMessages(myThread)
			}(n)
		}
		wg.Wait()
		for n := 0; n < NP; n++ {
			got := append([]int{}, mb.ReceiveMyMessages(n)...)
			sort.Ints(got)
			want := []int{10*round + (n+1)%NP, 10*round + (n+NP-1)%NP}
			sort.Ints(want)
			assert.Equal(t, want, got)
			mb.ClearMyMessages(n)
			assert.Empty(t, mb.ReceiveMyMessages(n))
		}
	}
}
