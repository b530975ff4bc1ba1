package schedule

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	attendanceWeight = 100
	timeOfDayBonus   = 10
	dayOfWeekBonus   = 5
)

// ParticipantWindow is one CANDIDATE availability window of a single
// participant, snapshotted for an optimization run.
type ParticipantWindow struct {
	ParticipantID uuid.UUID
	Start         time.Time
	End           time.Time
}

// CandidateSlot is the optimizer's working unit: a concrete slot with the set
// of participants able to attend it and its preference score. It is produced
// fresh on every run and never persisted.
type CandidateSlot struct {
	Start          time.Time
	End            time.Time
	ParticipantIDs []uuid.UUID
	Score          float64
}

// FindBestSlot scans the full slot grid of the hard window and returns the
// slot with the most attending participants, soft preferences breaking ties,
// the earliest start breaking exact score ties.
//
// A participant attends a slot only when one of their windows fully contains
// it; partial overlap does not count. Slots attended by fewer than
// minParticipants are discarded. A nil result with a nil error means there is
// nothing to suggest yet, which is a valid outcome rather than a failure.
func FindBestSlot(
	hard HardConstraints,
	duration time.Duration,
	soft SoftConstraints,
	windows []ParticipantWindow,
	minParticipants int,
) (*CandidateSlot, error) {
	grid, err := BuildGrid(hard.WindowStart, hard.WindowEnd, duration)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, nil
	}
	if minParticipants < 1 {
		minParticipants = 1
	}

	byParticipant := make(map[uuid.UUID][]ParticipantWindow)
	for _, w := range windows {
		byParticipant[w.ParticipantID] = append(byParticipant[w.ParticipantID], w)
	}

	var best *CandidateSlot
	for _, slot := range grid {
		attending := attendingParticipants(byParticipant, slot)
		if len(attending) < minParticipants {
			continue
		}

		candidate := &CandidateSlot{
			Start:          slot.Start,
			End:            slot.End,
			ParticipantIDs: attending,
			Score:          scoreSlot(slot.Start, len(attending), soft),
		}
		// Grid order is ascending by start, so a strict > keeps the
		// earliest slot on score ties.
		if best == nil || candidate.Score > best.Score {
			best = candidate
		}
	}
	return best, nil
}

// SelectPrimary picks the attending participant with the smallest identifier,
// a stable anchor for the booking record.
func SelectPrimary(ids []uuid.UUID) uuid.UUID {
	if len(ids) == 0 {
		return uuid.Nil
	}
	primary := ids[0]
	for _, id := range ids[1:] {
		if bytes.Compare(id[:], primary[:]) < 0 {
			primary = id
		}
	}
	return primary
}

func attendingParticipants(byParticipant map[uuid.UUID][]ParticipantWindow, slot Slot) []uuid.UUID {
	var ids []uuid.UUID
	for participantID, wins := range byParticipant {
		for _, w := range wins {
			if !slot.Start.Before(w.Start) && !slot.End.After(w.End) {
				ids = append(ids, participantID)
				break
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// Attendance dominates; soft preferences only separate slots with equal
// attendance.
func scoreSlot(start time.Time, attendingCount int, soft SoftConstraints) float64 {
	score := attendingCount * attendanceWeight
	if containsCode(soft.PreferredTimeOfDay, TimeOfDayBucket(start)) {
		score += timeOfDayBonus
	}
	if containsCode(soft.PreferredDaysOfWeek, DayCode(start)) {
		score += dayOfWeekBonus
	}
	return float64(score)
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}
