package sscflp

// Clone returns an independent deep copy of the Solution.
// Mutating the clone never aliases the receiver's slices or maps.
//
// Complexity: O(m+n).
func (s Solution) Clone() Solution {
	out := s
	out.OpenFacilities = append([]int(nil), s.OpenFacilities...)
	out.Assignments = append([]int(nil), s.Assignments...)
	out.CapacityViolations = make(map[int]float64, len(s.CapacityViolations))

	var (
		i int
		v float64
	)
	for i, v = range s.CapacityViolations {
		out.CapacityViolations[i] = v
	}

	return out
}

// Gap returns the relative optimality gap (TotalCost−LowerBound)/LowerBound.
// ok is false when no lower bound was supplied or the bound is zero
// (a zero bound makes the relative gap undefined).
//
// Complexity: O(1).
func (s Solution) Gap() (gap float64, ok bool) {
	if !s.HasLowerBound || s.LowerBound == 0 {
		return 0, false
	}

	return (s.TotalCost - s.LowerBound) / s.LowerBound, true
}

// Utilization returns the load/capacity fraction per facility that serves at
// least one customer or is marked open. Zero-capacity facilities report a
// defined utilization of 0 rather than dividing by zero.
//
// Errors: ErrNilInstance, plus assignment-shape sentinels from
// Instance.CheckAssignments.
//
// Complexity: O(m+n).
func (s Solution) Utilization(inst *Instance) (map[int]float64, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := inst.CheckAssignments(s.Assignments); err != nil {
		return nil, err
	}

	// Accumulate loads from the assignment, then fill in open-but-empty
	// facilities with zero load.
	load := make(map[int]float64, len(s.OpenFacilities))

	var (
		i int
		j int
	)
	for _, i = range s.OpenFacilities {
		load[i] = 0
	}
	for j = 0; j < inst.N(); j++ {
		load[s.Assignments[j]] += inst.Demand(j)
	}

	util := make(map[int]float64, len(load))

	var used float64
	for i, used = range load {
		if cap := inst.Capacity(i); cap > 0 {
			util[i] = used / cap
		} else {
			util[i] = 0
		}
	}

	return util, nil
}
