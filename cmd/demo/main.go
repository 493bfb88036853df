// Command demo runs the scheduling engine over the built-in dataset with
// both ranking methods and prints the resulting schedules and analysis.
package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/models"
	"github.com/spk-skripsi/exam-dss-api/internal/sample"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
)

func main() {
	logr, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	scheduler := service.NewSchedulerService(nil, nil, logr, nil, service.SchedulerConfig{})

	timeslots := make(map[int]models.TimeSlot)
	for _, slot := range sample.Timeslots() {
		timeslots[slot.ID] = slot
	}
	rooms := make(map[int]models.Room)
	for _, room := range sample.Rooms() {
		rooms[room.ID] = room
	}

	for _, method := range []string{"SAW", "TOPSIS"} {
		resp, err := scheduler.Generate(context.Background(), sample.Request(method))
		if err != nil {
			log.Fatalf("generation failed: %v", err)
		}
		solution := resp.Solution

		fmt.Printf("\n=== %s schedule (%s) ===\n", method, solution.SolutionID)
		for _, exam := range solution.Assigned {
			slot := timeslots[exam.TimeslotID]
			fmt.Printf("  %-16s %s %s-%s  %-14s panel %v  score %.3f\n",
				exam.StudentName, slot.Day, slot.StartTime, slot.EndTime,
				rooms[exam.RoomID].Name, exam.ExaminerIDs, exam.Score)
		}
		for _, item := range solution.Unscheduled {
			fmt.Printf("  session %d UNSCHEDULED: %s\n", item.SessionID, item.Reason)
		}

		analysis := service.AnalyzeSolution(solution)
		fmt.Printf("  success %.0f%%, avg score %.3f, workload spread %d\n",
			analysis.SuccessRate*100, analysis.AverageScore, analysis.WorkloadSpread)
		for _, rec := range analysis.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}
