// Command bench runs a synthetic positional workload against lists and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/indexlist/compare"
	"github.com/IvanBrykalov/indexlist/list"
	pmet "github.com/IvanBrykalov/indexlist/metrics/prom"
	"github.com/IvanBrykalov/indexlist/policy"
	"github.com/IvanBrykalov/indexlist/policy/insertion"
	"github.com/IvanBrykalov/indexlist/policy/merge"
)

func main() {
	// ---- Flags ----
	var (
		size   = flag.Int("size", 10_000, "elements preloaded into each list")
		shared = flag.Bool("shared", false, "all workers share one synchronized list instead of one list each")
		sorter = flag.String("sorter", "merge", "sort strategy: merge | insertion")

		workers  = flag.Int("workers", runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 70, "read percentage [0..100] (At/IndexOf)")
		sortPct  = flag.Float64("sorts", 0.01, "sort percentage [0..100]")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			logger.Info().Str("addr", *pprofAddr).Msg("pprof: serving")
			logger.Err(http.ListenAndServe(*pprofAddr, nil)).Msg("pprof server stopped")
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "indexlist", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Info().Str("addr", *metricsAddr).Msg("metrics: serving")
		logger.Err(http.ListenAndServe(*metricsAddr, nil)).Msg("metrics server stopped")
	}()

	// ---- Build lists ----
	var strategy policy.Sorter[int]
	switch *sorter {
	case "merge":
		strategy = merge.New[int]()
	case "insertion":
		strategy = insertion.New[int]()
	default:
		logger.Fatal().Str("sorter", *sorter).Msg("unknown sorter (use merge or insertion)")
	}

	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	newList := func() list.List[int] {
		l := list.New[int](list.Options[int]{
			Compare:         compare.Ordered[int],
			InitialCapacity: *size,
			Sorter:          strategy,
			Metrics:         metrics,
			Logger:          &logger,
		})
		for i := 0; i < *size; i++ {
			l.Append(i)
		}
		return l
	}

	lists := make([]list.List[int], workersN)
	if *shared {
		s := list.Synchronized(newList())
		for i := range lists {
			lists[i] = s
		}
	} else {
		for i := range lists {
			lists[i] = newList()
		}
	}
	defer func() {
		for _, l := range lists {
			_ = l.Close()
		}
	}()

	// ---- Load generation ----
	var reads, inserts, removes, sorts, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	readPctVal := *readPct
	sortPerMillion := int(*sortPct * 10_000)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workersN; w++ {
		l := lists[w]
		// Each worker gets its own RNG (rand.Rand is NOT goroutine-safe).
		r := rand.New(rand.NewSource(*seed + int64(w)*9973))
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				atomic.AddUint64(&total, 1)
				switch {
				case r.Intn(1_000_000) < sortPerMillion:
					atomic.AddUint64(&sorts, 1)
					l.Sort(nil, r.Intn(2) == 0)
				case r.Intn(100) < readPctVal:
					atomic.AddUint64(&reads, 1)
					if r.Intn(2) == 0 {
						l.At(r.Intn(l.Len() + 1))
					} else {
						l.IndexOf(r.Intn(*size))
					}
				default:
					// Alternate insert/remove around the preload size.
					n := l.Len()
					if n <= *size {
						atomic.AddUint64(&inserts, 1)
						if err := l.InsertAt(r.Int(), r.Intn(n+1)); err != nil {
							return err
						}
					} else {
						atomic.AddUint64(&removes, 1)
						if err := l.RemoveAt(r.Intn(n)); err != nil {
							return err
						}
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("workload failed")
	}
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	fmt.Printf("sorter=%s size=%d shared=%v workers=%d dur=%v seed=%d\n",
		*sorter, *size, *shared, workersN, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  inserts=%d  removes=%d  sorts=%d\n",
		ops, float64(ops)/elapsed.Seconds(),
		atomic.LoadUint64(&reads), atomic.LoadUint64(&inserts),
		atomic.LoadUint64(&removes), atomic.LoadUint64(&sorts))
	fmt.Printf("Len()=%d Cap()=%d\n", lists[0].Len(), lists[0].Cap())
}
