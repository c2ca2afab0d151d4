package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// SoundCardPlaced 手牌布局完成提示音
const SoundCardPlaced = "SOUND_CARD_PLACED"

// AudioManager 音频管理器
// 职责：
//   - 管理合成音效的 PCM 数据和播放器
//   - 从 SettingsManager 读取开关和音量
type AudioManager struct {
	context         *audio.Context           // 音频上下文，可为 nil（静音模式）
	settingsManager *SettingsManager         // 设置管理器，可为 nil
	sounds          map[string][]byte        // 音效ID -> 16 位立体声 PCM
	soundPlayers    map[string]*audio.Player // 播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - context: 音频上下文，nil 表示不输出声音
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(context *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         context,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// RegisterSound 注册音效 PCM 数据，覆盖同名音效
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	am.sounds[soundID] = pcm
	delete(am.soundPlayers, soundID)
}

// HasSound 返回音效是否已注册
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.sounds[soundID]
	return ok
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if am.context == nil {
		return nil
	}
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// GenerateTone 合成一段线性衰减的正弦音
//
// 输出为 16 位小端立体声 PCM，可直接交给 audio.Context 播放。
func GenerateTone(sampleRate int, frequency, duration float64) []byte {
	samples := int(float64(sampleRate) * duration)
	if samples <= 0 {
		return nil
	}

	pcm := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)) * envelope
		sample := uint16(int16(v * math.MaxInt16 * 0.8))
		binary.LittleEndian.PutUint16(pcm[i*4:], sample)
		binary.LittleEndian.PutUint16(pcm[i*4+2:], sample)
	}
	return pcm
}
