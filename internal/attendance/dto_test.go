package attendance_test

import (
	"net/http"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalErrors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
)

var _ = Describe("FilterFromQuery", func() {
	It("returns an empty filter for no parameters", func() {
		f, err := attendance.FilterFromQuery(url.Values{})
		Expect(err).To(BeNil())
		Expect(f.EmployeeID).To(BeEmpty())
		Expect(f.OnDate).To(BeNil())
		Expect(f.StartDate).To(BeNil())
		Expect(f.EndDate).To(BeNil())
	})

	It("parses all criteria", func() {
		query := url.Values{}
		query.Set("employee_id", " EMP001 ")
		query.Set("start_date", "2024-03-01")
		query.Set("end_date", "2024-03-31")

		f, err := attendance.FilterFromQuery(query)
		Expect(err).To(BeNil())
		Expect(f.EmployeeID).To(Equal("EMP001"))
		Expect(*f.StartDate).To(Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
		Expect(*f.EndDate).To(Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	})

	It("accepts date as an alias for on_date", func() {
		query := url.Values{}
		query.Set("date", "2024-03-09")

		f, err := attendance.FilterFromQuery(query)
		Expect(err).To(BeNil())
		Expect(*f.OnDate).To(Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	})

	It("prefers on_date when both aliases are present", func() {
		query := url.Values{}
		query.Set("on_date", "2024-03-09")
		query.Set("date", "2024-03-10")

		f, err := attendance.FilterFromQuery(query)
		Expect(err).To(BeNil())
		Expect(*f.OnDate).To(Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	})

	It("rejects a malformed date parameter", func() {
		query := url.Values{}
		query.Set("start_date", "March 1st")

		_, err := attendance.FilterFromQuery(query)
		Expect(err).NotTo(BeNil())
		Expect(err.StatusCode).To(Equal(http.StatusUnprocessableEntity))
		Expect(err.Code).To(Equal(internalErrors.ErrCodeValidationFailed))
	})

	It("treats blank parameters as absent", func() {
		query := url.Values{}
		query.Set("on_date", "   ")

		f, err := attendance.FilterFromQuery(query)
		Expect(err).To(BeNil())
		Expect(f.OnDate).To(BeNil())
	})
})
