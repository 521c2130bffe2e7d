package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/common/llm"
)

type suggestion struct {
	SuggestedStatus   string `json:"suggestedStatus"`
	SuggestedAssignee string `json:"suggestedAssignee"`
	Reasoning         string `json:"reasoning"`
}

var _ = Describe("ParseJSON", func() {
	It("decodes a well-formed object", func() {
		res := llm.ParseJSON[suggestion](`{"suggestedStatus":"in-progress","suggestedAssignee":"alice","reasoning":"owns checkout"}`, "{}")

		Expect(res.OK()).To(BeTrue())
		Expect(res.Parsed.SuggestedStatus).To(Equal("in-progress"))
		Expect(res.Parsed.SuggestedAssignee).To(Equal("alice"))
		Expect(res.Raw).To(BeEmpty())
	})

	It("treats blank content as the empty value", func() {
		res := llm.ParseJSON[suggestion]("  \n", "{}")

		Expect(res.OK()).To(BeTrue())
		Expect(*res.Parsed).To(Equal(suggestion{}))
	})

	It("treats blank content as an empty array", func() {
		res := llm.ParseJSON[[]suggestion]("", "[]")

		Expect(res.OK()).To(BeTrue())
		Expect(*res.Parsed).To(BeEmpty())
	})

	It("falls back to the raw text when the reply is prose", func() {
		reply := "I would assign this to Alice because she owns checkout."
		res := llm.ParseJSON[suggestion](reply, "{}")

		Expect(res.OK()).To(BeFalse())
		Expect(res.Parsed).To(BeNil())
		Expect(res.Raw).To(Equal(reply))
	})

	It("falls back when an array is expected but an object arrives", func() {
		res := llm.ParseJSON[[]suggestion](`{"suggestedStatus":"open"}`, "[]")

		Expect(res.OK()).To(BeFalse())
		Expect(res.Raw).To(Equal(`{"suggestedStatus":"open"}`))
	})

	It("unwraps a fenced json block", func() {
		reply := "```json\n[{\"suggestedStatus\":\"closed\"}]\n```"
		res := llm.ParseJSON[[]suggestion](reply, "[]")

		Expect(res.OK()).To(BeTrue())
		Expect(*res.Parsed).To(HaveLen(1))
		Expect((*res.Parsed)[0].SuggestedStatus).To(Equal("closed"))
	})
})

var _ = Describe("New", func() {
	It("requires an API key", func() {
		_, err := llm.New(llm.Config{})
		Expect(err).To(HaveOccurred())
	})

	It("defaults the model", func() {
		c, err := llm.New(llm.Config{APIKey: "sk-test"})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Model()).To(Equal(llm.DefaultModel))
	})
})
