package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(delay time.Duration) (Debouncer, <-chan []string) {
	return collectCapped(delay, 0)
}

func collectCapped(delay, maxWait time.Duration) (Debouncer, <-chan []string) {
	calls := make(chan []string, 10)

	return NewDebouncer(delay, maxWait, func(files []string) {
		calls <- files
	}), calls
}

func Test_Debouncer_CoalescesBurst(t *testing.T) {
	d, calls := collect(50 * time.Millisecond)
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger("shade.yaml")
		d.Trigger(".env")
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case files := <-calls:
		assert.Equal(t, []string{".env", "shade.yaml"}, files)
	case <-time.After(time.Second):
		t.Fatal("debouncer did not fire")
	}

	select {
	case files := <-calls:
		t.Fatalf("unexpected second call with %v", files)
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_Debouncer_SeparateBursts(t *testing.T) {
	d, calls := collect(20 * time.Millisecond)
	defer d.Stop()

	d.Trigger("shade.yaml")

	select {
	case files := <-calls:
		assert.Equal(t, []string{"shade.yaml"}, files)
	case <-time.After(time.Second):
		t.Fatal("first burst did not fire")
	}

	d.Trigger(".env")

	select {
	case files := <-calls:
		assert.Equal(t, []string{".env"}, files)
	case <-time.After(time.Second):
		t.Fatal("second burst did not fire")
	}
}

func Test_Debouncer_Stop(t *testing.T) {
	tests := []struct {
		name  string
		first func(d Debouncer)
		then  func(d Debouncer)
	}{
		{
			name:  "stop cancels pending",
			first: func(d Debouncer) { d.Trigger("shade.yaml") },
			then:  func(d Debouncer) { d.Stop() },
		},
		{
			name:  "trigger after stop is ignored",
			first: func(d Debouncer) { d.Stop() },
			then:  func(d Debouncer) { d.Trigger("shade.yaml") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, calls := collect(30 * time.Millisecond)

			tt.first(d)
			tt.then(d)

			select {
			case files := <-calls:
				t.Fatalf("unexpected call with %v", files)
			case <-time.After(100 * time.Millisecond):
			}
		})
	}
}

func Test_Debouncer_ZeroDelay(t *testing.T) {
	d, calls := collect(0)
	defer d.Stop()

	d.Trigger("shade.yaml")

	select {
	case files := <-calls:
		require.Len(t, files, 1)
	case <-time.After(time.Second):
		t.Fatal("debouncer did not fire")
	}
}

func Test_Debouncer_ConcurrentTriggers(t *testing.T) {
	d, calls := collect(50 * time.Millisecond)
	defer d.Stop()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			d.Trigger("shade.yaml")
		}()
	}

	wg.Wait()

	select {
	case files := <-calls:
		assert.Equal(t, []string{"shade.yaml"}, files)
	case <-time.After(time.Second):
		t.Fatal("debouncer did not fire")
	}
}

func Test_Debouncer_MaxWait(t *testing.T) {
	tests := []struct {
		name    string
		maxWait time.Duration
		fires   bool
	}{
		{name: "capped burst fires while triggers continue", maxWait: 200 * time.Millisecond, fires: true},
		{name: "uncapped burst waits for quiet", maxWait: 0, fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, calls := collectCapped(100*time.Millisecond, tt.maxWait)
			defer d.Stop()

			ticker := time.NewTicker(10 * time.Millisecond)
			defer ticker.Stop()

			deadline := time.After(700 * time.Millisecond)

			d.Trigger("shade.yaml")

			for {
				select {
				case files := <-calls:
					require.True(t, tt.fires, "unexpected call with %v", files)
					assert.Equal(t, []string{"shade.yaml"}, files)

					return
				case <-ticker.C:
					d.Trigger("shade.yaml")
				case <-deadline:
					require.False(t, tt.fires, "capped burst never fired")

					return
				}
			}
		})
	}
}

func Test_Debouncer_DistinctSortedFiles(t *testing.T) {
	d, calls := collect(20 * time.Millisecond)
	defer d.Stop()

	for _, f := range []string{"shade.yaml", ".env", "shade.yaml", "b.yaml", ".env"} {
		d.Trigger(f)
	}

	select {
	case files := <-calls:
		assert.Equal(t, []string{".env", "b.yaml", "shade.yaml"}, files)
	case <-time.After(time.Second):
		t.Fatal("debouncer did not fire")
	}
}
