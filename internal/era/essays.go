// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

package era

import "fmt"

// essayBodies holds the pre-written essay paragraphs per covered decade.
// The personalized variant is prefixed with "<name>, in <year>, you'd be all
// about" at render time; the generic variant stands alone.
var essayBodies = map[int]struct {
	personalized string
	generic      string
}{
	1920: {
		personalized: "you'd be all about jazz revolution, Art Deco elegance, and speakeasy culture. Post-war optimism fueled experimentation in music, fashion, and lifestyle, creating a vibrant era of cultural rebellion and artistic innovation.",
		generic:      "The Roaring Twenties brought jazz revolution, Art Deco elegance, and speakeasy culture. Post-war optimism fueled experimentation in music, fashion, and lifestyle, creating a vibrant era of cultural rebellion and artistic innovation.",
	},
	1950: {
		personalized: "you'd be all about American prosperity and suburban dreams. Rock 'n' roll emerged, Hollywood's Golden Age flourished, and consumer culture exploded with diners, drive-ins, and television transforming entertainment and social habits.",
		generic:      "The 1950s epitomized American prosperity and suburban dreams. Rock 'n' roll emerged, Hollywood's Golden Age flourished, and consumer culture exploded with diners, drive-ins, and television transforming entertainment and social habits.",
	},
	1970: {
		personalized: "you'd be all about counterculture and disco fever. Folk rock, blockbuster cinema, and ethnic cuisine gained popularity while bell-bottoms and platform shoes defined fashion in this era of social change and musical diversity.",
		generic:      "The 1970s embodied counterculture and disco fever. Folk rock, blockbuster cinema, and ethnic cuisine gained popularity while bell-bottoms and platform shoes defined fashion in this era of social change and musical diversity.",
	},
	1990: {
		personalized: "you'd be all about alternative culture's mainstream breakthrough. Grunge music, independent films, and fusion cuisine reflected a generation's authenticity-seeking spirit, while minimalist fashion and globalization shaped cultural identity.",
		generic:      "The 1990s marked alternative culture's mainstream breakthrough. Grunge music, independent films, and fusion cuisine reflected a generation's authenticity-seeking spirit, while minimalist fashion and globalization shaped cultural identity.",
	},
	2010: {
		personalized: "you'd be all about digital revolution's cultural impact. Streaming services, food trucks, and sustainable fashion emerged as social media transformed how we discover, share, and experience music, film, and lifestyle trends.",
		generic:      "The 2010s witnessed digital revolution's cultural impact. Streaming services, food trucks, and sustainable fashion emerged as social media transformed how we discover, share, and experience music, film, and lifestyle trends.",
	},
}

// Essay returns the static fallback essay for a year, personalized when
// userName is non-empty. Pure: identical inputs yield identical output.
// Uncovered decades get a generic "unique cultural moment" paragraph.
func Essay(year int, userName string) string {
	body, ok := essayBodies[Decade(year)]
	if !ok {
		if userName != "" {
			return fmt.Sprintf("%s, in %d, you'd be experiencing a unique cultural moment, blending traditional values with emerging trends across music, cinema, cuisine, fashion, and travel, creating distinctive aesthetic and lifestyle preferences.", userName, year)
		}
		return fmt.Sprintf("The %ds represented a unique cultural moment, blending traditional values with emerging trends across music, cinema, cuisine, fashion, and travel, creating distinctive aesthetic and lifestyle preferences.", year)
	}
	if userName != "" {
		return fmt.Sprintf("%s, in %d, %s", userName, year, body.personalized)
	}
	return body.generic
}
