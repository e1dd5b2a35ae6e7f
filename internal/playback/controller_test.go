package playback_test

import (
	"context"
	"iter"
	"math/rand"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/step"
)

func fromSlice(events []step.Event) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

var _ = Describe("Controller", func() {
	var (
		ctrl   *playback.Controller
		frames []playback.Frame
		waits  []time.Duration
	)

	BeforeEach(func() {
		ctrl = playback.New()
		frames = nil
		waits = nil
		ctrl.SetWaiter(func(ctx context.Context, d time.Duration) bool {
			waits = append(waits, d)
			return ctx.Err() == nil
		})
		ctrl.AddObserver(playback.ObserverFunc(func(f playback.Frame) {
			frames = append(frames, f)
		}))
	})

	Describe("delay", func() {
		It("defaults to 1000 ms", func() {
			Expect(ctrl.DelayMs()).To(Equal(playback.DefaultDelay))
			Expect(ctrl.Delay()).To(Equal(time.Second))
		})

		It("accepts the inclusive bounds", func() {
			Expect(ctrl.SetDelay(0)).To(Succeed())
			Expect(ctrl.SetDelay(2000)).To(Succeed())
			Expect(ctrl.DelayMs()).To(Equal(2000))
		})

		It("rejects values outside the bounds", func() {
			Expect(ctrl.SetDelay(-1)).To(MatchError(playback.ErrDelayBounds))
			Expect(ctrl.SetDelay(2001)).To(MatchError(playback.ErrDelayBounds))
			Expect(ctrl.DelayMs()).To(Equal(playback.DefaultDelay))
		})
	})

	Describe("Play", func() {
		It("applies events in order and publishes snapshots", func() {
			input := []int{5, 3, 8, 1}
			res := ctrl.Play(context.Background(), "run", input, sorting.NewBubble().Steps(input))

			Expect(res.Outcome).To(Equal(playback.Completed))
			Expect(res.Final).To(Equal([]int{1, 3, 5, 8}))
			Expect(res.Steps).To(Equal(len(frames)))
			Expect(input).To(Equal([]int{5, 3, 8, 1}))

			first := frames[0]
			Expect(first.Event.Kind).To(Equal(step.KindCompare))
			Expect(first.Narration).To(Equal("Comparing 5 and 3"))
			Expect(first.Values).To(Equal([]int{5, 3, 8, 1}))

			second := frames[1]
			Expect(second.Event.Kind).To(Equal(step.KindSwap))
			Expect(second.Values).To(Equal([]int{3, 5, 8, 1}))

			for i, f := range frames {
				Expect(f.Seq).To(Equal(i + 1))
				Expect(f.RunID).To(Equal("run"))
			}
			Expect(frames[len(frames)-1].Narration).To(Equal(step.CompleteNarration))
		})

		It("waits once between steps and never after Complete", func() {
			input := []int{2, 1}
			ctrl.Play(context.Background(), "run", input, sorting.NewBubble().Steps(input))

			Expect(frames).To(HaveLen(3))
			Expect(waits).To(HaveLen(2))
		})

		It("keeps snapshots independent of the working array", func() {
			input := []int{3, 2, 1}
			ctrl.Play(context.Background(), "run", input, sorting.NewSelection().Steps(input))

			Expect(frames[0].Values).To(Equal([]int{3, 2, 1}))
		})

		It("applies Overwrite events", func() {
			events := []step.Event{
				step.Overwrite(0, 9, "Setting position 0 to 9"),
				step.Complete([]int{9, 2}),
			}
			res := ctrl.Play(context.Background(), "run", []int{1, 2}, fromSlice(events))

			Expect(res.Final).To(Equal([]int{9, 2}))
			Expect(frames[0].Values).To(Equal([]int{9, 2}))
		})

		It("emits only Complete for empty input", func() {
			res := ctrl.Play(context.Background(), "run", []int{}, sorting.NewQuick().Steps(nil))

			Expect(res.Outcome).To(Equal(playback.Completed))
			Expect(frames).To(HaveLen(1))
			Expect(frames[0].Event.Kind).To(Equal(step.KindComplete))
			Expect(res.Final).To(BeEmpty())
		})

		It("keeps the working array a permutation of the input", func() {
			input := rand.New(rand.NewSource(5)).Perm(30)
			want := slices.Clone(input)
			slices.Sort(want)

			ctrl.Play(context.Background(), "run", input, sorting.NewQuick().Steps(input))

			for _, f := range frames {
				got := slices.Clone(f.Values)
				slices.Sort(got)
				Expect(got).To(Equal(want))
			}
		})

		It("reports metrics", func() {
			ctrl.AddMetric(metrics.NewComparisons())
			ctrl.AddMetric(metrics.NewSwaps())
			input := []int{5, 3, 8, 1}
			res := ctrl.Play(context.Background(), "run", input, sorting.NewBubble().Steps(input))

			Expect(res.Metrics).To(HaveKeyWithValue("comparisons", 6.0))
			Expect(res.Metrics).To(HaveKeyWithValue("swaps", 4.0))
		})

		It("resets metrics between runs", func() {
			ctrl.AddMetric(metrics.NewComparisons())
			input := []int{2, 1}
			ctrl.Play(context.Background(), "a", input, sorting.NewBubble().Steps(input))
			res := ctrl.Play(context.Background(), "b", input, sorting.NewBubble().Steps(input))

			Expect(res.Metrics).To(HaveKeyWithValue("comparisons", 1.0))
		})
	})

	Describe("cancellation", func() {
		It("stops after the step on which it was canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			ctrl.AddObserver(playback.ObserverFunc(func(f playback.Frame) {
				if f.Seq == 3 {
					cancel()
				}
			}))

			input := rand.New(rand.NewSource(9)).Perm(50)
			res := ctrl.Play(ctx, "run", input, sorting.NewBubble().Steps(input))

			Expect(res.Outcome).To(Equal(playback.Canceled))
			Expect(res.Steps).To(Equal(3))
			Expect(frames).To(HaveLen(3))
		})

		It("applies nothing when already canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			input := []int{3, 2, 1}
			res := ctrl.Play(ctx, "run", input, sorting.NewBubble().Steps(input))

			Expect(res.Outcome).To(Equal(playback.Canceled))
			Expect(res.Steps).To(BeZero())
			Expect(frames).To(BeEmpty())
			Expect(res.Final).To(Equal([]int{3, 2, 1}))
		})

		It("interrupts a real wait", func() {
			ctrl.SetWaiter(playback.Sleep)
			Expect(ctrl.SetDelay(2000)).To(Succeed())
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			input := []int{3, 2, 1}
			start := time.Now()
			res := ctrl.Play(ctx, "run", input, sorting.NewBubble().Steps(input))

			Expect(res.Outcome).To(Equal(playback.Canceled))
			Expect(res.Steps).To(Equal(1))
			Expect(time.Since(start)).To(BeNumerically("<", time.Second))
		})
	})

	Describe("delay changes", func() {
		It("take effect at the next suspension point", func() {
			ctrl.AddObserver(playback.ObserverFunc(func(f playback.Frame) {
				if f.Seq == 2 {
					Expect(ctrl.SetDelay(50)).To(Succeed())
				}
			}))

			input := []int{4, 3, 2, 1}
			ctrl.Play(context.Background(), "run", input, sorting.NewBubble().Steps(input))

			Expect(waits[0]).To(Equal(time.Second))
			Expect(waits[1]).To(Equal(50 * time.Millisecond))
			Expect(waits[len(waits)-1]).To(Equal(50 * time.Millisecond))
		})
	})
})

var _ = Describe("Sleep", func() {
	It("returns immediately for zero delay", func() {
		Expect(playback.Sleep(context.Background(), 0)).To(BeTrue())
	})

	It("reports a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(playback.Sleep(ctx, 0)).To(BeFalse())
		Expect(playback.Sleep(ctx, time.Hour)).To(BeFalse())
	})
})

var _ = Describe("Outcome", func() {
	It("names both outcomes", func() {
		Expect(playback.Completed.String()).To(Equal("completed"))
		Expect(playback.Canceled.String()).To(Equal("canceled"))
	})
})
