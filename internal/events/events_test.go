package events

import "testing"

func TestFanoutDeliversInOrder(t *testing.T) {
	var got []string
	first := NotifierFunc(func(e Event) { got = append(got, "first") })
	second := NotifierFunc(func(e Event) { got = append(got, "second") })

	Fanout{first, nil, second}.Notify(LevelUp{Level: 2})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("fanout order = %v", got)
	}
}

func TestRecorderCount(t *testing.T) {
	r := &Recorder{}
	r.Notify(LetterPicked{Letter: 'A', Points: 1})
	r.Notify(LetterPicked{Letter: 'B', Points: 1})
	r.Notify(WordCompleted{Word: "AB", Bonus: 2})

	if n := Count[LetterPicked](r); n != 2 {
		t.Errorf("LetterPicked count = %d, expected 2", n)
	}
	if n := Count[GameOver](r); n != 0 {
		t.Errorf("GameOver count = %d, expected 0", n)
	}

	r.Reset()
	if len(r.Events) != 0 {
		t.Error("Reset should drop recorded events")
	}
}
