package browse

import (
	"path/filepath"

	"github.com/harrison/seqscan/internal/sequence"
)

// ItemStat resolves the stat rollup for one Item. For a file or folder
// it is a single Stat call; for a sequence it renders every frame from
// FirstTime to LastTime by Step and aggregates via AggregateStat. Frames
// that fail to stat (missing frames, or members removed between scan and
// stat) are skipped.
func ItemStat(src StatSource, it sequence.Item) (Stat, error) {
	switch it.Kind {
	case sequence.ItemFile, sequence.ItemFolder:
		s, err := src.Stat(filepath.Join(it.Directory, it.Name))
		if err != nil {
			return Stat{}, err
		}
		s.NLinkAvg = float64(s.NLink)
		return s, nil

	case sequence.ItemSequence:
		var stats []Stat
		for t := it.Seq.FirstTime; t <= it.Seq.LastTime; t += it.Seq.Step {
			path := filepath.Join(it.Directory, it.Seq.FrameName(t))
			s, err := src.Stat(path)
			if err != nil {
				continue
			}
			stats = append(stats, s)
		}
		return AggregateStat(stats), nil

	default:
		return Stat{}, nil
	}
}
