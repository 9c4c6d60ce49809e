package catalog

// builtin returns the fixed tweak catalog. Tweaks are plain value records
// so Build can check the uniqueness invariant in one pass.
//
// Revert commands restore the macOS default where the mechanism has a
// defined inverse; tweaks without one (cache cleanup, one-shot moves) have
// an empty revert command and are reported as not revertible.
func builtin() []Category {
	return []Category{
		{
			Name:        "Dock",
			Description: "Customize macOS Dock settings",
			Tweaks: []Tweak{
				{
					Name:          "Auto-hide Dock",
					Description:   "Hide the Dock until the pointer reaches the screen edge",
					ApplyCommand:  "defaults write com.apple.dock autohide -bool true && killall Dock",
					RevertCommand: "defaults write com.apple.dock autohide -bool false && killall Dock",
				},
				{
					Name:          "Disable Dock Magnification",
					Description:   "Turn off the icon magnification effect",
					ApplyCommand:  "defaults write com.apple.dock magnification -bool false && killall Dock",
					RevertCommand: "defaults write com.apple.dock magnification -bool true && killall Dock",
				},
				{
					Name:          "Small Dock Icons",
					Description:   "Set Dock icon size to 32px",
					ApplyCommand:  "defaults write com.apple.dock tilesize -int 32 && killall Dock",
					RevertCommand: "defaults delete com.apple.dock tilesize && killall Dock",
				},
				{
					Name:          "Large Dock Icons",
					Description:   "Set Dock icon size to 64px",
					ApplyCommand:  "defaults write com.apple.dock tilesize -int 64 && killall Dock",
					RevertCommand: "defaults delete com.apple.dock tilesize && killall Dock",
				},
				{
					Name:         "Add Dock Spacer",
					Description:  "Add a small spacer tile to the Dock",
					ApplyCommand: `defaults write com.apple.dock persistent-apps -array-add '{"tile-type"="small-spacer-tile";}' && killall Dock`,
				},
				{
					Name:                 "Reset Dock",
					Description:          "Reset the Dock to its default settings",
					ApplyCommand:         "defaults delete com.apple.dock && killall Dock",
					RequiresConfirmation: true,
				},
			},
		},
		{
			Name:        "Power Management",
			Description: "Configure sleep and power settings",
			Tweaks: []Tweak{
				{
					Name:                 "Disable Computer Sleep",
					Description:          "Prevent the computer from sleeping",
					ApplyCommand:         "sudo systemsetup -setcomputersleep Never",
					RevertCommand:        "sudo systemsetup -setcomputersleep 15",
					RequiresConfirmation: true,
				},
				{
					Name:                 "Short Display Sleep",
					Description:          "Put the display to sleep after 5 minutes",
					ApplyCommand:         "sudo systemsetup -setdisplaysleep 5",
					RevertCommand:        "sudo systemsetup -setdisplaysleep 10",
					RequiresConfirmation: true,
				},
				{
					Name:                 "Disable Display Sleep",
					Description:          "Prevent the display from sleeping",
					ApplyCommand:         "sudo systemsetup -setdisplaysleep Never",
					RevertCommand:        "sudo systemsetup -setdisplaysleep 10",
					RequiresConfirmation: true,
				},
			},
		},
		{
			Name:        "Networking",
			Description: "Configure network settings",
			Tweaks: []Tweak{
				{
					Name:                 "Flush DNS Cache",
					Description:          "Remove all entries from the DNS cache",
					ApplyCommand:         "sudo dscacheutil -flushcache; sudo killall -HUP mDNSResponder",
					RequiresConfirmation: true,
				},
			},
		},
		{
			Name:        "Optimization",
			Description: "Clean up caches and organize files",
			Tweaks: []Tweak{
				{
					Name:                 "Clear User Caches",
					Description:          "Remove all files from ~/Library/Caches",
					ApplyCommand:         "rm -rf ~/Library/Caches/*",
					RequiresConfirmation: true,
				},
				{
					Name:         "Collect Desktop Screenshots",
					Description:  "Move screenshots from the Desktop to ~/Pictures/Screenshots",
					ApplyCommand: `mkdir -p ~/Pictures/Screenshots && find ~/Desktop -maxdepth 1 \( -name 'Screen Shot*.png' -o -name 'Screenshot*.png' \) -exec mv -n {} ~/Pictures/Screenshots/ \;`,
				},
				{
					Name:         "Collect Desktop Images",
					Description:  "Move common image files from the Desktop to ~/Pictures",
					ApplyCommand: `find ~/Desktop -maxdepth 1 -type f \( -iname '*.png' -o -iname '*.jpg' -o -iname '*.jpeg' -o -iname '*.gif' \) -exec mv -n {} ~/Pictures/ \;`,
				},
				{
					Name:         "List Largest Home Files",
					Description:  "Show the 10 biggest files in the home directory",
					ApplyCommand: "ls -lah ~ | grep -v '^d' | sort -k5 -hr | head -n 10",
				},
			},
		},
		{
			Name:        "Homebrew",
			Description: "Manage the Homebrew package manager",
			Tweaks: []Tweak{
				{
					Name:         "Update Homebrew Packages",
					Description:  "Update Homebrew and upgrade all installed packages",
					ApplyCommand: "brew update && brew upgrade",
				},
				{
					Name:         "Clean Up Homebrew",
					Description:  "Remove old versions and clean the download cache",
					ApplyCommand: "brew cleanup",
				},
				{
					Name:         "List Outdated Packages",
					Description:  "Show packages with updates available",
					ApplyCommand: "brew outdated",
				},
				{
					Name:          "Disable Homebrew Analytics",
					Description:   "Turn off Homebrew analytics collection",
					ApplyCommand:  "brew analytics off",
					RevertCommand: "brew analytics on",
				},
			},
		},
	}
}
