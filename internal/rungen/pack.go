package rungen

import (
	"github.com/rawblock/seedsearch/internal/item"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/runstate"
	"github.com/rawblock/seedsearch/internal/streams"
	"github.com/rawblock/seedsearch/internal/tables"
)

// GenerateArcanaPack fills a size-slot Arcana pack. Each slot first
// rolls for The Soul; once one slot has produced it, the remaining
// slots draw ordinary tarots with resample-on-duplicate (spec.md §4.3
// "Tarot pack", "Soul").
func GenerateArcanaPack(main, soul *streams.Source, size, ante, packSlot int, state *runstate.State) item.Set {
	var set item.Set
	soulUsed := false
	for slot := 0; slot < size; slot++ {
		if !soulUsed {
			roll := clampUnit(prng.NextRandom(&main.State))
			if roll > tables.SoulThreshold {
				soulUsed = true
				state.MarkSoulPackConsumed(ante, packSlot)
				set.Append(DrawLegendaryJoker(&soul.State))
				continue
			}
		}
		set.Append(drawTarotDeduped(main, &set))
	}
	return set
}

// GenerateSpectralPack is the Spectral-pack analogue of
// GenerateArcanaPack, with an extra Black Hole roll checked after Soul
// fails, per spec.md §4.3's "roll for Soul first, then Black Hole, then
// normal spectral" ordering.
func GenerateSpectralPack(main, soul *streams.Source, size, ante, packSlot int, state *runstate.State) item.Set {
	var set item.Set
	soulUsed := false
	for slot := 0; slot < size; slot++ {
		if !soulUsed {
			roll := clampUnit(prng.NextRandom(&main.State))
			if roll > tables.SoulThreshold {
				soulUsed = true
				state.MarkSoulPackConsumed(ante, packSlot)
				set.Append(DrawLegendaryJoker(&soul.State))
				continue
			}
		}
		bhRoll := clampUnit(prng.NextRandom(&main.State))
		if bhRoll > tables.SoulThreshold {
			set.Append(item.New(item.CategorySpectral, blackHoleOrdinal))
			continue
		}
		set.Append(drawSpectralDeduped(main, &set))
	}
	return set
}

// GenerateCelestialPack fills a size-slot Planet pack, with
// resample-on-duplicate.
func GenerateCelestialPack(main *streams.Source, size int) item.Set {
	var set item.Set
	for slot := 0; slot < size; slot++ {
		set.Append(drawPlanetDeduped(main, &set))
	}
	return set
}

// GenerateStandardPack fills a size-slot playing-card pack. Standard
// cards are not deduplicated — the reference allows duplicate playing
// cards within one pack.
func GenerateStandardPack(s PlayingCardStreams, size int) item.Set {
	var set item.Set
	for slot := 0; slot < size; slot++ {
		set.Append(DrawPlayingCard(s))
	}
	return set
}

// GenerateBuffoonPack fills a size-slot joker pack, rejecting candidates
// that would duplicate a joker already in this pack or that the run
// cannot currently obtain (already owned, and Showman isn't active —
// runstate.State.CanObtainJoker), resampling only the distinguishing
// ordinal draw within the original rarity and keeping the original
// draw's edition and stickers. It asserts past
// tables.ResampleAssertBound resamples.
func GenerateBuffoonPack(main *streams.Source, js JokerStreams, stake tables.Stake, editionRate float64, size int, state *runstate.State) item.Set {
	var set item.Set
	for slot := 0; slot < size; slot++ {
		original := DrawJoker(js, stake, editionRate)
		rarity := tables.JokerCommonRarity
		for r := tables.JokerUncommonRarity; r <= tables.JokerLegendaryRarity; r++ {
			if original.Ordinal() >= tables.JokerPoolOffset(r) {
				rarity = r
			}
		}
		pool := tables.JokerPool(rarity)
		candidate := original
		n := 1
		for (set.ContainsBase(candidate) || !state.CanObtainJoker(candidate)) && n <= tables.ResampleAssertBound {
			poolIndex := prng.NextRandomInt(main.Resample(n), 0, len(pool)-1)
			candidate = item.New(item.CategoryJoker, tables.JokerPoolOffset(rarity)+poolIndex).
				WithEdition(original.Edition()).WithStickers(original.Stickers())
			n++
		}
		if set.ContainsBase(candidate) || !state.CanObtainJoker(candidate) {
			panic("rungen: GenerateBuffoonPack exceeded ResampleAssertBound without an acceptable candidate")
		}
		set.Append(candidate)
		state.AddOwnedJoker(candidate)
	}
	return set
}

func drawTarotDeduped(main *streams.Source, set *item.Set) item.Item {
	candidate := DrawTarot(&main.State)
	for n := 1; set.ContainsBase(candidate); n++ {
		if n > tables.ResampleAssertBound {
			panic("rungen: tarot pack resample exceeded ResampleAssertBound")
		}
		candidate = DrawTarot(main.Resample(n))
	}
	return candidate
}

func drawPlanetDeduped(main *streams.Source, set *item.Set) item.Item {
	candidate := DrawPlanet(&main.State)
	for n := 1; set.ContainsBase(candidate); n++ {
		if n > tables.ResampleAssertBound {
			panic("rungen: planet pack resample exceeded ResampleAssertBound")
		}
		candidate = DrawPlanet(main.Resample(n))
	}
	return candidate
}

func drawSpectralDeduped(main *streams.Source, set *item.Set) item.Item {
	candidate := DrawSpectral(&main.State)
	for n := 1; set.ContainsBase(candidate); n++ {
		if n > tables.ResampleAssertBound {
			panic("rungen: spectral pack resample exceeded ResampleAssertBound")
		}
		candidate = DrawSpectral(main.Resample(n))
	}
	return candidate
}
