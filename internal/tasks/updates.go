package tasks

import "fmt"

// ProgressUpdate represents a progress event during a sync.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Sync phase enumeration
type Phase int

const (
	FilterInput Phase = iota
	ResolveVolumes
	MergeVolumes
	SaveLibrary
)

func (p Phase) String() string {
	switch p {
	case FilterInput:
		return "filter_input"
	case ResolveVolumes:
		return "resolve_volumes"
	case MergeVolumes:
		return "merge_volumes"
	case SaveLibrary:
		return "save_library"
	default:
		return ""
	}
}

func filterInputUpdate(requested int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FilterInput,
		Step:    1,
		Total:   4,
		Message: fmt.Sprintf("Filtering %d requested ISBNs...", requested),
	}
}

func resolveVolumesUpdate(count int, resolver string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveVolumes,
		Step:    2,
		Total:   4,
		Message: fmt.Sprintf("Resolving %d ISBNs with %s...", count, resolver),
	}
}

func mergeVolumesUpdate(resolved, attempted int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MergeVolumes,
		Step:    3,
		Total:   4,
		Message: fmt.Sprintf("Merging %d of %d volumes...", resolved, attempted),
	}
}

func saveLibraryUpdate(size int, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveLibrary,
		Step:    4,
		Total:   4,
		Message: fmt.Sprintf("Saving library (%d volumes) to %s...", size, path),
		Data:    path,
	}
}
