package main

import (
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// TestMutate runs c.N column inserts and removals from every worker. Every
// mutation recomputes a whole column so it gets slower as the table grows.
func TestMutate(c Config) {

	client := NewClient()
	table := CreateTable(client, c.Base, c.Cols)

	addURL := fmt.Sprintf("%s/v1/tables/%s:addCol", c.Base, table)
	removeURL := fmt.Sprintf("%s/v1/tables/%s:removeCol", c.Base, table)

	fmt.Println("Preload rows...")
	for i := 0; i < 100; i++ {
		resp, err := Post(client, fmt.Sprintf("%s/v1/tables/%s:addRow", c.Base, table), JSON{"index": i, "key": i})
		if err != nil {
			fmt.Println("ERROR: do request:", err.Error())
			return
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	mutations := c.N
	failures := int64(0)
	latencies := &Latencies{}

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&mutations, -1)
			if n < 0 {
				return
			}

			url, payload := addURL, JSON{"index": 0, "key": n}
			if n%2 == 1 {
				url, payload = removeURL, JSON{"index": 0}
			}

			t := time.Now()
			resp, err := Post(client, url, payload)
			latencies.Add(time.Since(t))
			if err != nil {
				fmt.Println("ERROR: do request:", err.Error())
				atomic.AddInt64(&failures, 1)
				continue
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				atomic.AddInt64(&failures, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("mutations:", c.N)
	fmt.Println("failures:", failures)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f mutations/sec\n", float64(c.N)/took.Seconds())
	latencies.Print()
}
