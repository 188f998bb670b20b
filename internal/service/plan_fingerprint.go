package service

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

// PlanFingerprint hashes every input that influences Build. Equal
// fingerprints mean the builder would produce the same entries and total.
func PlanFingerprint(workdayStart string, employee models.Employee, tasks []models.MaintenanceTask, weather *models.Weather) string {
	h := xxhash.New()

	_, _ = h.WriteString(workdayStart)
	_, _ = h.Write([]byte{0})

	hashEmployee(h, employee)
	_, _ = h.Write([]byte{0})

	for _, task := range tasks {
		hashTask(h, task)
	}
	_, _ = h.Write([]byte{0})

	if weather == nil {
		_, _ = h.Write([]byte{'-'})
	} else {
		writeInt(h, weather.Temperature)
		writeField(h, weather.Description)
		writeField(h, strconv.FormatBool(weather.Rain))
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func hashEmployee(h *xxhash.Digest, employee models.Employee) {
	writeField(h, employee.Name)
	writeField(h, employee.JobRole)
	writeField(h, employee.Qualification)
	writeInt(h, employee.MaxWorkMinutes)
	writeField(h, strconv.FormatBool(employee.SplitBreaks))
	writeInt(h, employee.MaxPhysicalLoad)

	areas := append([]string(nil), employee.OutdoorSpecializations...)
	sort.Strings(areas)
	for _, area := range areas {
		writeField(h, area)
	}
}

func hashTask(h *xxhash.Digest, task models.MaintenanceTask) {
	writeField(h, task.Description)
	writeInt(h, task.DurationMinutes)
	writeField(h, string(task.Priority))
	writeField(h, task.JobRole)
	writeField(h, task.Qualification)
	writeInt(h, task.PhysicalLoad)
	if task.Attraction != nil {
		writeField(h, *task.Attraction)
	} else {
		_, _ = h.Write([]byte{'-', 0})
	}
	writeField(h, strconv.FormatBool(task.Outdoor))
}

func writeField(h *xxhash.Digest, v string) {
	_, _ = h.WriteString(v)
	_, _ = h.Write([]byte{0})
}

func writeInt(h *xxhash.Digest, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
	_, _ = h.Write(buf[:])
}
