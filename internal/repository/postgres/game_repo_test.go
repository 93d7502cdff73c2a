package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

func TestSnapshotHelp_DetectsChangedQuestion(t *testing.T) {
	questions := []entity.GameQuestion{
		{ID: 1},
		{ID: 2, HelpHash: entity.HelpHash{FriendCall: "a"}},
	}
	before := snapshotHelp(questions)

	questions[0].HelpHash.FiftyFifty = []string{"a", "c"}

	assert.NotEqual(t, before[1], helpSnapshot(questions[0].HelpHash))
	assert.Equal(t, before[2], helpSnapshot(questions[1].HelpHash))
	assert.Equal(t, "{}", before[1], "Пустой HelpHash сериализуется как пустой объект")
}
