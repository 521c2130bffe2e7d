package triage_test

import (
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/triage"
)

// words returns "word01 word02 ..." for the inclusive range [from, to].
func words(from, to int) []string {
	var out []string
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("word%02d", i))
	}
	return out
}

func bug(id int64, title, description string) model.Bug {
	return model.Bug{ID: id, Title: title, Description: description}
}

var _ = Describe("DetectDuplicates", func() {
	Context("title pass", func() {
		It("groups titles that match after trimming and lowercasing", func() {
			bugs := []model.Bug{
				bug(1, "Login fails", "a"),
				bug(2, "Checkout total wrong", "b"),
				bug(3, "  login FAILS ", "c"),
			}

			groups := triage.DetectDuplicates(bugs)

			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Type).To(Equal(model.DuplicateTypeTitle))
			Expect(groups[0].Value).To(Equal("login fails"))
			Expect(groups[0].Bugs).To(Equal([]model.BugRef{
				{ID: 1, Title: "Login fails"},
				{ID: 3, Title: "  login FAILS "},
			}))
			Expect(groups[0].Similarity).To(BeNil())
		})

		It("orders groups by first occurrence", func() {
			bugs := []model.Bug{
				bug(1, "Zeta", ""),
				bug(2, "Alpha", ""),
				bug(3, "alpha", ""),
				bug(4, "zeta", ""),
			}

			groups := triage.DetectDuplicates(bugs)

			Expect(groups).To(HaveLen(2))
			Expect(groups[0].Value).To(Equal("zeta"))
			Expect(groups[1].Value).To(Equal("alpha"))
		})

		It("returns an empty slice when nothing repeats", func() {
			groups := triage.DetectDuplicates([]model.Bug{bug(1, "One", ""), bug(2, "Two", "")})
			Expect(groups).NotTo(BeNil())
			Expect(groups).To(BeEmpty())
		})
	})

	Context("description pass", func() {
		It("flags a pair whose overlap is above 0.8", func() {
			a := strings.Join(words(1, 10), " ")
			b := strings.Join(append(words(1, 9), "different"), " ")

			groups := triage.DetectDuplicates([]model.Bug{bug(1, "First", a), bug(2, "Second", b)})

			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Type).To(Equal(model.DuplicateTypeDescription))
			Expect(groups[0].Value).To(Equal("Similar descriptions"))
			Expect(groups[0].Bugs).To(Equal([]model.BugRef{{ID: 1, Title: "First"}, {ID: 2, Title: "Second"}}))
			Expect(*groups[0].Similarity).To(BeNumerically("~", 9.0/11.0, 1e-9))
		})

		It("does not flag a pair at exactly 0.8", func() {
			a := strings.Join(words(1, 8), " ")
			b := strings.Join(words(1, 10), " ")
			Expect(triage.Similarity(a, b)).To(BeNumerically("==", 0.8))

			groups := triage.DetectDuplicates([]model.Bug{bug(1, "First", a), bug(2, "Second", b)})

			Expect(groups).To(BeEmpty())
		})

		It("skips descriptions of 50 characters or fewer", func() {
			short := strings.Repeat("x", 50)
			groups := triage.DetectDuplicates([]model.Bug{bug(1, "First", short), bug(2, "Second", short)})
			Expect(groups).To(BeEmpty())

			long := strings.Repeat("x", 51)
			groups = triage.DetectDuplicates([]model.Bug{bug(1, "First", long), bug(2, "Second", long)})
			Expect(groups).To(HaveLen(1))
			Expect(*groups[0].Similarity).To(BeNumerically("==", 1.0))
		})

		It("counts description length in code points", func() {
			// 26 emoji take 52 UTF-16 units but only 26 code points.
			emoji := strings.Repeat("\U0001F41B", 26)
			groups := triage.DetectDuplicates([]model.Bug{bug(1, "First", emoji), bug(2, "Second", emoji)})
			Expect(groups).To(BeEmpty())

			emoji = strings.Repeat("\U0001F41B", 51)
			groups = triage.DetectDuplicates([]model.Bug{bug(1, "First", emoji), bug(2, "Second", emoji)})
			Expect(groups).To(HaveLen(1))
		})

		It("compares case-insensitively", func() {
			a := strings.ToUpper(strings.Join(words(1, 10), " "))
			b := strings.Join(words(1, 10), " ")

			groups := triage.DetectDuplicates([]model.Bug{bug(1, "First", a), bug(2, "Second", b)})

			Expect(groups).To(HaveLen(1))
		})

		It("emits one group per matching pair", func() {
			d := strings.Join(words(1, 10), " ")
			groups := triage.DetectDuplicates([]model.Bug{
				bug(1, "One", d),
				bug(2, "Two", d),
				bug(3, "Three", d),
			})

			Expect(groups).To(HaveLen(3))
			Expect(groups[0].Bugs[0].ID).To(Equal(int64(1)))
			Expect(groups[0].Bugs[1].ID).To(Equal(int64(2)))
			Expect(groups[1].Bugs[1].ID).To(Equal(int64(3)))
			Expect(groups[2].Bugs[0].ID).To(Equal(int64(2)))
		})
	})

	It("reports a pair in both passes when title and description match", func() {
		d := strings.Join(words(1, 10), " ")
		groups := triage.DetectDuplicates([]model.Bug{bug(1, "Crash on save", d), bug(2, "crash on save", d)})

		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Type).To(Equal(model.DuplicateTypeTitle))
		Expect(groups[1].Type).To(Equal(model.DuplicateTypeDescription))
	})
})

var _ = Describe("Similarity", func() {
	It("counts distinct words only", func() {
		Expect(triage.Similarity("a a a b", "a b")).To(BeNumerically("==", 1.0))
	})

	It("is zero for two blank strings", func() {
		Expect(triage.Similarity("  ", "")).To(BeNumerically("==", 0))
	})
})
